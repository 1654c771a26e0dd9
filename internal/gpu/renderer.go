//go:build wgpu

package gpu

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"golife/internal/scene"
)

const (
	cellInstanceStride = uint64(unsafe.Sizeof(scene.CellInstance{}))
	uiVertexStride     = uint64(unsafe.Sizeof(scene.Vertex{}))
)

// unitQuad is the shared base shape for the instanced grid pipeline: two
// triangles covering the unit square, expanded per instance in the shader.
var unitQuad = []float32{
	0, 0, 1, 0, 0, 1,
	0, 1, 1, 0, 1, 1,
}

// Renderer owns the WebGPU device, the two render pipelines and the growable
// destination buffers for the per-frame geometry streams.
type Renderer struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat wgpu.TextureFormat
	width         int
	height        int

	gridPipeline *wgpu.RenderPipeline
	uiPipeline   *wgpu.RenderPipeline

	quadBuffer     *wgpu.Buffer
	instanceBuffer *wgpu.Buffer
	instanceCap    Capacity
	uiBuffer       *wgpu.Buffer
	uiCap          Capacity
}

// NewRenderer creates the device and pipelines for the provided window and
// preallocates the geometry buffers. instanceHint sizes the initial cell
// instance buffer, typically gridW*gridH.
func NewRenderer(win *Window, instanceHint int) (*Renderer, error) {
	r := &Renderer{instance: wgpu.CreateInstance(nil)}

	r.surface = r.instance.CreateSurface(win.SurfaceDescriptor())

	adapter, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: r.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	r.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}
	r.device = device
	r.queue = device.GetQueue()

	width, height := win.Size()
	r.Resize(width, height)

	if err := r.initPipelines(); err != nil {
		return nil, err
	}
	if err := r.initBuffers(instanceHint); err != nil {
		return nil, err
	}
	return r, nil
}

// Resize reconfigures the surface for a new framebuffer size. Zero-sized
// framebuffers (minimized window) are ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height

	capabilities := r.surface.GetCapabilities(r.adapter)
	r.surfaceFormat = capabilities.Formats[0]

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   capabilities.AlphaModes[0],
	})
}

func (r *Renderer) initPipelines() error {
	module, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "life shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: shaderSource,
		},
	})
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}
	defer module.Release()

	layout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: "life pipeline layout",
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	defer layout.Release()

	blend := &wgpu.BlendState{
		Color: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorSrcAlpha,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
		Alpha: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
	}

	r.gridPipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "grid pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_grid",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: 2 * 4,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					},
				},
				{
					ArrayStride: cellInstanceStride,
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 1},
						{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 2},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 16, ShaderLocation: 3},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    r.surfaceFormat,
					Blend:     blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create grid pipeline: %w", err)
	}

	r.uiPipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "ui pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_ui",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uiVertexStride,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
						{Format: wgpu.VertexFormatFloat32x3, Offset: 8, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    r.surfaceFormat,
					Blend:     blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create ui pipeline: %w", err)
	}
	return nil
}

func (r *Renderer) initBuffers(instanceHint int) error {
	quad, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "grid quad buffer",
		Size:  uint64(len(unitQuad)) * 4,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create quad buffer: %w", err)
	}
	r.queue.WriteBuffer(quad, 0, sliceToBytes(unitQuad))
	r.quadBuffer = quad

	if instanceHint < 1 {
		instanceHint = 1
	}
	r.instanceCap = NewCapacity(instanceHint)
	r.instanceBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "grid instance buffer",
		Size:  uint64(r.instanceCap.Elems()) * cellInstanceStride,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create instance buffer: %w", err)
	}

	r.uiCap = NewCapacity(4096)
	r.uiBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ui vertex buffer",
		Size:  uint64(r.uiCap.Elems()) * uiVertexStride,
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create ui vertex buffer: %w", err)
	}
	return nil
}

// Render uploads the frame's geometry streams and draws them. Only the bytes
// actually produced this frame are written; the buffers are recreated at the
// next power-of-two size when a frame outgrows them. A lost surface is
// reconfigured and the frame skipped.
func (r *Renderer) Render(instances []scene.CellInstance, vertices []scene.Vertex) error {
	frame, err := r.surface.GetCurrentTexture()
	if err != nil {
		r.Resize(r.width, r.height)
		return nil
	}

	if len(instances) > 0 {
		if r.instanceCap.Grow(len(instances)) {
			r.instanceBuffer.Release()
			r.instanceBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
				Label: "grid instance buffer",
				Size:  uint64(r.instanceCap.Elems()) * cellInstanceStride,
				Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
			})
			if err != nil {
				frame.Release()
				return fmt.Errorf("grow instance buffer: %w", err)
			}
		}
		r.queue.WriteBuffer(r.instanceBuffer, 0, sliceToBytes(instances))
	}

	if len(vertices) > 0 {
		if r.uiCap.Grow(len(vertices)) {
			r.uiBuffer.Release()
			r.uiBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
				Label: "ui vertex buffer",
				Size:  uint64(r.uiCap.Elems()) * uiVertexStride,
				Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
			})
			if err != nil {
				frame.Release()
				return fmt.Errorf("grow ui vertex buffer: %w", err)
			}
		}
		r.queue.WriteBuffer(r.uiBuffer, 0, sliceToBytes(vertices))
	}

	view, err := frame.CreateView(nil)
	if err != nil {
		frame.Release()
		return fmt.Errorf("create frame view: %w", err)
	}

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		frame.Release()
		return fmt.Errorf("create command encoder: %w", err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0.05, G: 0.05, B: 0.07, A: 1},
			},
		},
	})

	if len(instances) > 0 {
		pass.SetPipeline(r.gridPipeline)
		pass.SetVertexBuffer(0, r.quadBuffer, 0, wgpu.WholeSize)
		pass.SetVertexBuffer(1, r.instanceBuffer, 0, uint64(len(instances))*cellInstanceStride)
		pass.Draw(uint32(len(unitQuad)/2), uint32(len(instances)), 0, 0)
	}
	if len(vertices) > 0 {
		pass.SetPipeline(r.uiPipeline)
		pass.SetVertexBuffer(0, r.uiBuffer, 0, uint64(len(vertices))*uiVertexStride)
		pass.Draw(uint32(len(vertices)), 1, 0, 0)
	}
	pass.End()

	commands, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		view.Release()
		frame.Release()
		return fmt.Errorf("finish encoder: %w", err)
	}
	r.queue.Submit(commands)
	r.surface.Present()

	commands.Release()
	encoder.Release()
	view.Release()
	frame.Release()
	return nil
}

// Release frees all GPU resources owned by the renderer.
func (r *Renderer) Release() {
	for _, buf := range []*wgpu.Buffer{r.quadBuffer, r.instanceBuffer, r.uiBuffer} {
		if buf != nil {
			buf.Release()
		}
	}
	if r.gridPipeline != nil {
		r.gridPipeline.Release()
	}
	if r.uiPipeline != nil {
		r.uiPipeline.Release()
	}
	if r.device != nil {
		r.device.Release()
	}
	if r.adapter != nil {
		r.adapter.Release()
	}
	if r.surface != nil {
		r.surface.Release()
	}
	if r.instance != nil {
		r.instance.Release()
	}
}

// sliceToBytes reinterprets a slice as raw bytes for a GPU buffer upload. The
// result aliases the input and must not outlive it.
func sliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), int(size)*len(data))
}
