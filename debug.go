package easel

// FrameStats counts the device calls issued through a Canvas.
type FrameStats struct {
	Frames           int
	ProgramBinds     int
	TextureBinds     int
	MeshBinds        int
	FramebufferBinds int
	DrawCalls        int
}

// sub returns the counters accumulated between prev and s.
func (s FrameStats) sub(prev FrameStats) FrameStats {
	return FrameStats{
		Frames:           s.Frames - prev.Frames,
		ProgramBinds:     s.ProgramBinds - prev.ProgramBinds,
		TextureBinds:     s.TextureBinds - prev.TextureBinds,
		MeshBinds:        s.MeshBinds - prev.MeshBinds,
		FramebufferBinds: s.FramebufferBinds - prev.FramebufferBinds,
		DrawCalls:        s.DrawCalls - prev.DrawCalls,
	}
}

// statsDevice wraps a Device and counts state changes and draw calls.
type statsDevice struct {
	Device
	stats FrameStats
	prev  FrameStats
}

func (d *statsDevice) UseProgram(program uint32) {
	d.stats.ProgramBinds++
	d.Device.UseProgram(program)
}

func (d *statsDevice) BindTexture(tex uint32) {
	d.stats.TextureBinds++
	d.Device.BindTexture(tex)
}

func (d *statsDevice) BindMesh(mesh uint32) {
	d.stats.MeshBinds++
	d.Device.BindMesh(mesh)
}

func (d *statsDevice) BindFramebuffer(fb uint32) {
	d.stats.FramebufferBinds++
	d.Device.BindFramebuffer(fb)
}

func (d *statsDevice) DrawElements(count int) {
	d.stats.DrawCalls++
	d.Device.DrawElements(count)
}

// Stats returns the counters accumulated since the canvas was created or
// ResetStats was last called.
func (c *Canvas) Stats() FrameStats { return c.stats.stats }

// ResetStats zeroes the counters.
func (c *Canvas) ResetStats() {
	c.stats.stats = FrameStats{}
	c.stats.prev = FrameStats{}
}

// endFrame finishes a presented frame: pending screenshots are captured and,
// in debug mode, the frame's counters are logged. depth is the transform
// stack depth left by the frame's drawing.
func (c *Canvas) endFrame(depth int) {
	c.flushScreenshots()
	c.stats.stats.Frames++
	if c.debug {
		f := c.stats.stats.sub(c.stats.prev)
		logger.Debug("frame",
			"programs", f.ProgramBinds,
			"textures", f.TextureBinds,
			"meshes", f.MeshBinds,
			"framebuffers", f.FramebufferBinds,
			"draws", f.DrawCalls)
		if depth != 1 {
			logger.Warn("transform stack unbalanced at end of frame", "depth", depth)
		}
	}
	c.stats.prev = c.stats.stats
}
