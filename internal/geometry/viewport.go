package geometry

// Zoom limits and step factors of the editor canvas.
const (
	MinZoom       = 0.1
	MaxZoom       = 5.0
	ZoomStep      = 1.2
	WheelZoomStep = 1.1
)

// Viewport is the zoom/pan state of a canvas. Position is the screen offset
// of the canvas origin in pixels.
type Viewport struct {
	Scale    float64 `json:"scale"`
	Position Point   `json:"position"`
}

// NewViewport returns the unzoomed, unpanned viewport.
func NewViewport() Viewport {
	return Viewport{Scale: 1}
}

// ClampZoom limits a scale to [MinZoom, MaxZoom].
func ClampZoom(scale float64) float64 {
	return max(MinZoom, min(MaxZoom, scale))
}

// ZoomIn zooms around the canvas origin.
func (v Viewport) ZoomIn() Viewport {
	v.Scale = ClampZoom(v.Scale * ZoomStep)
	return v
}

// ZoomOut zooms around the canvas origin.
func (v Viewport) ZoomOut() Viewport {
	v.Scale = ClampZoom(v.Scale / ZoomStep)
	return v
}

// ZoomAt applies one wheel step around the pointer so the canvas point under
// the pointer stays put. A positive deltaY zooms out.
func (v Viewport) ZoomAt(pointer Point, deltaY float64) Viewport {
	anchor := v.ScreenToCanvas(pointer)

	next := v.Scale * WheelZoomStep
	if deltaY > 0 {
		next = v.Scale / WheelZoomStep
	}
	v.Scale = ClampZoom(next)
	v.Position = Point{
		X: pointer.X - anchor.X*v.Scale,
		Y: pointer.Y - anchor.Y*v.Scale,
	}
	return v
}

// ZoomToFit centers content inside the container at the largest allowed
// scale. It reports false for empty content.
func ZoomToFit(content, container Size) (Viewport, bool) {
	if content.Width == 0 || content.Height == 0 {
		return Viewport{}, false
	}

	scale := ClampZoom(min(container.Width/content.Width, container.Height/content.Height))
	return Viewport{
		Scale: scale,
		Position: Point{
			X: (container.Width - content.Width*scale) / 2,
			Y: (container.Height - content.Height*scale) / 2,
		},
	}, true
}

// Matrix maps canvas pixels to screen pixels.
func (v Viewport) Matrix() Matrix2D {
	return Translate(v.Position.X, v.Position.Y).Multiply(Scale(v.Scale, v.Scale))
}

// ScreenToCanvas maps a pointer position to canvas pixels.
func (v Viewport) ScreenToCanvas(p Point) Point {
	return v.Matrix().Invert().Apply(p)
}

// CanvasToScreen maps canvas pixels to a screen position.
func (v Viewport) CanvasToScreen(p Point) Point {
	return v.Matrix().Apply(p)
}
