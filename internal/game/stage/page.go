package stage

// Page is the virtual document scrolled by the wheel and keyboard. It is
// Sections viewports tall, so the offset stays in [0, (Sections-1)*height].
type Page struct {
	Sections  int
	WheelStep float32
	KeyStep   float32
}

// Max returns the largest offset for a viewport height.
func (p Page) Max(height int) float32 {
	if p.Sections <= 1 || height <= 0 {
		return 0
	}
	return float32((p.Sections - 1) * height)
}

// Clamp limits offset to the page.
func (p Page) Clamp(offset float32, height int) float32 {
	if offset < 0 {
		return 0
	}
	if m := p.Max(height); offset > m {
		return m
	}
	return offset
}

// Wheel returns the offset after dy wheel notches; positive dy scrolls up.
func (p Page) Wheel(offset, dy float32, height int) float32 {
	return p.Clamp(offset-dy*p.WheelStep, height)
}
