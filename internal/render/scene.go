package render

import (
	"math"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/geometry"
)

type Mode int

const (
	// ModeEditor colors seats by category.
	ModeEditor Mode = iota
	// ModeViewer colors unavailable seats by status.
	ModeViewer
)

const (
	defaultSeatColor = "#3b82f6"
	defaultTextColor = "#ffffff"
	selectedStroke   = "#2563eb"
	zoneOpacity      = 0.15
	seatCornerRatio  = 0.2
	labelFontRatio   = 0.5
	elementFontSize  = 14
)

// Options controls one compile pass.
type Options struct {
	Canvas   geometry.Size
	Mode     Mode
	Selected []string
	Viewport *geometry.Viewport
}

// Compile lays the map out back to front: background, zones, elements,
// seats, then seat labels when the settings show them.
func Compile(m *document.SeatMap, opts Options) []DrawCommand {
	if m == nil || opts.Canvas.Width <= 0 || opts.Canvas.Height <= 0 {
		return nil
	}

	selected := make(map[string]bool, len(opts.Selected))
	for _, id := range opts.Selected {
		selected[id] = true
	}
	settings := m.SettingsOrDefault()

	var cmds []DrawCommand
	if opts.Viewport != nil {
		cmds = append(cmds,
			DrawCommand{Op: OpSave},
			DrawCommand{Op: OpTransform, Transform: opts.Viewport.Matrix().ToSlice()},
		)
	}

	if m.Background.URL != "" {
		b := m.Background
		scale := b.ScaleOrDefault()
		fit := geometry.AspectFit(b.Width, b.Height, opts.Canvas.Width, opts.Canvas.Height)
		cmds = append(cmds, DrawCommand{
			Op:        OpImage,
			Kind:      "background",
			Transform: geometry.Translate(b.X, b.Y).Multiply(geometry.Scale(scale, scale)).ToSlice(),
			Width:     fit.Width,
			Height:    fit.Height,
			ImageURL:  b.URL,
		})
	}

	for _, z := range m.Zones {
		r, ok := m.ZoneBounds(z.ID)
		if !ok {
			continue
		}
		cmds = append(cmds, DrawCommand{
			Op:          OpRect,
			ObjectID:    z.ID,
			Kind:        "zone",
			Transform:   geometry.Translate(r.X*opts.Canvas.Width, r.Y*opts.Canvas.Height).ToSlice(),
			Width:       r.Width * opts.Canvas.Width,
			Height:      r.Height * opts.Canvas.Height,
			Fill:        z.Color,
			Stroke:      z.Color,
			StrokeWidth: 1,
			Opacity:     zoneOpacity,
		})
	}

	for _, e := range m.Elements {
		cmds = append(cmds, elementCommand(e, opts.Canvas))
	}

	for _, s := range m.Seats {
		cmds = append(cmds, seatCommand(m, s, opts, selected[s.ID]))
	}

	if settings.ShowLabels {
		for _, s := range m.Seats {
			cmds = append(cmds, labelCommand(m, s, opts.Canvas))
		}
	}

	if opts.Viewport != nil {
		cmds = append(cmds, DrawCommand{Op: OpRestore})
	}
	return cmds
}

// seatBox returns the seat's pixel origin, size and transform. Position
// follows each canvas axis; size uses the uniform scale so seats keep
// their shape.
func seatBox(s document.Seat, canvas geometry.Size) (geometry.Matrix2D, float64, float64) {
	w, h := geometry.SizeToPixel(s.W, s.H, canvas)
	origin := geometry.PointToPixel(geometry.Point{X: s.X, Y: s.Y}, canvas)
	t := geometry.Translate(origin.X, origin.Y)
	if s.R != 0 {
		t = t.Multiply(geometry.RotateAround(s.R, geometry.Point{X: w / 2, Y: h / 2}))
	}
	return t, w, h
}

func seatCommand(m *document.SeatMap, s document.Seat, opts Options, selected bool) DrawCommand {
	t, w, h := seatBox(s, opts.Canvas)
	fill, stroke := defaultSeatColor, ""
	if cat, ok := m.Category(s.CategoryID); ok {
		fill, stroke = cat.Color, cat.BorderColor
	}
	if opts.Mode == ModeViewer {
		if st := s.StatusOrDefault(); st != document.StatusAvailable {
			fill = document.StatusColors[st]
		}
	}
	cmd := DrawCommand{
		Op:        OpRect,
		ObjectID:  s.ID,
		Kind:      "seat",
		Transform: t.ToSlice(),
		Width:     w,
		Height:    h,
		Radius:    math.Min(w, h) * seatCornerRatio,
		Fill:      fill,
		Stroke:    stroke,
		Opacity:   1,
	}
	if stroke != "" {
		cmd.StrokeWidth = 1
	}
	if selected {
		cmd.Stroke, cmd.StrokeWidth = selectedStroke, 2
	}
	return cmd
}

func labelCommand(m *document.SeatMap, s document.Seat, canvas geometry.Size) DrawCommand {
	t, w, h := seatBox(s, canvas)
	color := defaultTextColor
	if cat, ok := m.Category(s.CategoryID); ok && cat.TextColor != "" {
		color = cat.TextColor
	}
	return DrawCommand{
		Op:        OpText,
		ObjectID:  s.ID,
		Kind:      "label",
		Transform: t.Multiply(geometry.Translate(w/2, h/2)).ToSlice(),
		Text:      s.Label,
		FontSize:  math.Min(w, h) * labelFontRatio,
		Fill:      color,
	}
}

func elementCommand(e document.Element, canvas geometry.Size) DrawCommand {
	origin := geometry.PointToPixel(geometry.Point{X: e.X, Y: e.Y}, canvas)
	w, h := e.W*canvas.Width, e.H*canvas.Height
	t := geometry.Translate(origin.X, origin.Y)
	if e.R != 0 {
		t = t.Multiply(geometry.RotateAround(e.R, geometry.Point{X: w / 2, Y: h / 2}))
	}
	color := e.Color
	if color == "" {
		color = "#374151"
	}
	cmd := DrawCommand{ObjectID: e.ID, Kind: "element", Transform: t.ToSlice(), Width: w, Height: h, Fill: color}
	switch e.Type {
	case document.ElementDivider:
		cmd.Op = OpRect
	case document.ElementIcon:
		cmd.Op, cmd.Icon = OpIcon, e.Icon
	default:
		cmd.Op, cmd.Text = OpText, e.Label
		cmd.FontSize = e.FontSize
		if cmd.FontSize == 0 {
			cmd.FontSize = elementFontSize
		}
	}
	return cmd
}
