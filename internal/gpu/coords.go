package gpu

// cursorToFramebuffer maps a cursor position reported in window coordinates
// to framebuffer pixels. On high-DPI displays the two spaces differ by the
// content scale; hit-testing must run in framebuffer pixels like the rendered
// geometry.
func cursorToFramebuffer(x, y float64, fbW, fbH, winW, winH int) (float64, float64) {
	if winW > 0 && winH > 0 {
		x *= float64(fbW) / float64(winW)
		y *= float64(fbH) / float64(winH)
	}
	return x, y
}
