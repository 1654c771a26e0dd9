package gpu

// shaderSource holds the WGSL for both pipelines: vs_grid expands a unit quad
// to each cell instance's min/max rectangle, vs_ui passes pre-built triangle
// vertices through. Both run in normalized device coordinates, so neither
// needs a bind group.
const shaderSource = `
struct VsOut {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec3<f32>,
};

@vertex
fn vs_grid(
    @location(0) corner: vec2<f32>,
    @location(1) cell_min: vec2<f32>,
    @location(2) cell_max: vec2<f32>,
    @location(3) cell_color: vec3<f32>,
) -> VsOut {
    var out: VsOut;
    let pos = cell_min + (cell_max - cell_min) * corner;
    out.position = vec4<f32>(pos, 0.0, 1.0);
    out.color = cell_color;
    return out;
}

@vertex
fn vs_ui(@location(0) position: vec2<f32>, @location(1) color: vec3<f32>) -> VsOut {
    var out: VsOut;
    out.position = vec4<f32>(position, 0.0, 1.0);
    out.color = color;
    return out;
}

@fragment
fn fs_main(in: VsOut) -> @location(0) vec4<f32> {
    return vec4<f32>(in.color, 1.0);
}
`
