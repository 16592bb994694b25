package geometry

// Point is a 2D position. Depending on context it is either in normalized
// canvas space ([0,1] on both axes) or in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the pixel size of a container (canvas, image, viewport).
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Fit is the result of fitting content into a box while preserving aspect ratio.
type Fit struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scale  float64 `json:"scale"`
}

// ToPixel converts a normalized value to pixels along one axis.
func ToPixel(normalized, containerSize float64) float64 {
	return normalized * containerSize
}

// ToNormalized converts a pixel value to normalized space along one axis.
// A zero-sized container maps everything to 0.
func ToNormalized(pixel, containerSize float64) float64 {
	if containerSize == 0 {
		return 0
	}
	return pixel / containerSize
}

// PointToPixel converts X against the container width and Y against its height.
func PointToPixel(p Point, container Size) Point {
	return Point{
		X: ToPixel(p.X, container.Width),
		Y: ToPixel(p.Y, container.Height),
	}
}

// PointToNormalized is the inverse of PointToPixel.
func PointToNormalized(p Point, container Size) Point {
	return Point{
		X: ToNormalized(p.X, container.Width),
		Y: ToNormalized(p.Y, container.Height),
	}
}

// Clamp01 clamps v into [0,1].
func Clamp01(v float64) float64 {
	return min(1, max(0, v))
}

// AspectRatio returns width/height, or 0 for a zero height.
func AspectRatio(width, height float64) float64 {
	if height == 0 {
		return 0
	}
	return width / height
}

// AspectFit returns the largest size that fits content into the box without
// distorting it. Zero-sized content yields a zero Fit.
func AspectFit(contentW, contentH, boxW, boxH float64) Fit {
	if contentW == 0 || contentH == 0 {
		return Fit{}
	}

	scale := min(boxW/contentW, boxH/contentH)
	return Fit{
		Width:  contentW * scale,
		Height: contentH * scale,
		Scale:  scale,
	}
}

// UniformScale is the scale used for sizes that must not follow the container
// aspect ratio, such as seat width and height.
func UniformScale(container Size) float64 {
	return min(container.Width, container.Height)
}

// SizeToPixel converts a normalized width/height pair with the uniform scale,
// so a square seat stays square on a wide canvas.
func SizeToPixel(w, h float64, container Size) (float64, float64) {
	s := UniformScale(container)
	return w * s, h * s
}
