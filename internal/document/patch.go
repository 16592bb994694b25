package document

// SeatPatch is a partial seat update. Nil fields are left untouched. An
// empty CategoryID or ZoneID clears the reference.
type SeatPatch struct {
	Label      *string        `json:"label,omitempty"`
	X          *float64       `json:"x,omitempty"`
	Y          *float64       `json:"y,omitempty"`
	W          *float64       `json:"w,omitempty"`
	H          *float64       `json:"h,omitempty"`
	R          *float64       `json:"r,omitempty"`
	Row        *int           `json:"row,omitempty"`
	Column     *int           `json:"column,omitempty"`
	CategoryID *string        `json:"categoryId,omitempty"`
	ZoneID     *string        `json:"zoneId,omitempty"`
	Status     *SeatStatus    `json:"status,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p SeatPatch) IsEmpty() bool {
	return p.Label == nil && p.X == nil && p.Y == nil && p.W == nil && p.H == nil &&
		p.R == nil && p.Row == nil && p.Column == nil && p.CategoryID == nil &&
		p.ZoneID == nil && p.Status == nil && p.Metadata == nil
}

// Apply returns s with the patch applied.
func (p SeatPatch) Apply(s Seat) Seat {
	if p.Label != nil {
		s.Label = *p.Label
	}
	if p.X != nil {
		s.X = *p.X
	}
	if p.Y != nil {
		s.Y = *p.Y
	}
	if p.W != nil {
		s.W = *p.W
	}
	if p.H != nil {
		s.H = *p.H
	}
	if p.R != nil {
		s.R = *p.R
	}
	if p.Row != nil {
		s.Row = Ptr(*p.Row)
	}
	if p.Column != nil {
		s.Column = Ptr(*p.Column)
	}
	if p.CategoryID != nil {
		s.CategoryID = *p.CategoryID
	}
	if p.ZoneID != nil {
		s.ZoneID = *p.ZoneID
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Metadata != nil {
		s.Metadata = cloneMetadata(p.Metadata)
	}
	return s
}

type CategoryPatch struct {
	Name        *string  `json:"name,omitempty"`
	Color       *string  `json:"color,omitempty"`
	BorderColor *string  `json:"borderColor,omitempty"`
	TextColor   *string  `json:"textColor,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Order       *int     `json:"order,omitempty"`
}

func (p CategoryPatch) apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.BorderColor != nil {
		c.BorderColor = *p.BorderColor
	}
	if p.TextColor != nil {
		c.TextColor = *p.TextColor
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Price != nil {
		c.Price = Ptr(*p.Price)
	}
	if p.Order != nil {
		c.Order = Ptr(*p.Order)
	}
	return c
}

type ZonePatch struct {
	Name  *string  `json:"name,omitempty"`
	Color *string  `json:"color,omitempty"`
	Price *float64 `json:"price,omitempty"`
}

func (p ZonePatch) apply(z Zone) Zone {
	if p.Name != nil {
		z.Name = *p.Name
	}
	if p.Color != nil {
		z.Color = *p.Color
	}
	if p.Price != nil {
		z.Price = Ptr(*p.Price)
	}
	return z
}

type ElementPatch struct {
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	W        *float64 `json:"w,omitempty"`
	H        *float64 `json:"h,omitempty"`
	R        *float64 `json:"r,omitempty"`
	Label    *string  `json:"label,omitempty"`
	Icon     *string  `json:"icon,omitempty"`
	FontSize *float64 `json:"fontSize,omitempty"`
	Color    *string  `json:"color,omitempty"`
}

func (p ElementPatch) apply(e Element) Element {
	if p.X != nil {
		e.X = *p.X
	}
	if p.Y != nil {
		e.Y = *p.Y
	}
	if p.W != nil {
		e.W = *p.W
	}
	if p.H != nil {
		e.H = *p.H
	}
	if p.R != nil {
		e.R = *p.R
	}
	if p.Label != nil {
		e.Label = *p.Label
	}
	if p.Icon != nil {
		e.Icon = *p.Icon
	}
	if p.FontSize != nil {
		e.FontSize = *p.FontSize
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	return e
}

// GridConfigPatch is merged into the existing grid config.
type GridConfigPatch struct {
	ColumnLabels         []string `json:"columnLabels,omitempty"`
	AisleAfterColumns    []int    `json:"aisleAfterColumns,omitempty"`
	AisleWidth           *float64 `json:"aisleWidth,omitempty"`
	RowNumbersVisible    *bool    `json:"rowNumbersVisible,omitempty"`
	ColumnHeadersVisible *bool    `json:"columnHeadersVisible,omitempty"`
}

func (p GridConfigPatch) apply(g GridConfig) GridConfig {
	if p.ColumnLabels != nil {
		g.ColumnLabels = append([]string(nil), p.ColumnLabels...)
	}
	if p.AisleAfterColumns != nil {
		g.AisleAfterColumns = append([]int(nil), p.AisleAfterColumns...)
	}
	if p.AisleWidth != nil {
		g.AisleWidth = *p.AisleWidth
	}
	if p.RowNumbersVisible != nil {
		g.RowNumbersVisible = Ptr(*p.RowNumbersVisible)
	}
	if p.ColumnHeadersVisible != nil {
		g.ColumnHeadersVisible = Ptr(*p.ColumnHeadersVisible)
	}
	return g
}

// SettingsPatch is merged into the existing settings.
type SettingsPatch struct {
	AllowMultiSelect  *bool     `json:"allowMultiSelect,omitempty"`
	MaxSelectable     *int      `json:"maxSelectable,omitempty"`
	ShowLabels        *bool     `json:"showLabels,omitempty"`
	ShowLegend        *bool     `json:"showLegend,omitempty"`
	ShowRowNumbers    *bool     `json:"showRowNumbers,omitempty"`
	ShowColumnHeaders *bool     `json:"showColumnHeaders,omitempty"`
	Theme             *Theme    `json:"theme,omitempty"`
	DefaultSeatSize   *SeatSize `json:"defaultSeatSize,omitempty"`
}

func (p SettingsPatch) apply(s Settings) Settings {
	if p.AllowMultiSelect != nil {
		s.AllowMultiSelect = *p.AllowMultiSelect
	}
	if p.MaxSelectable != nil {
		s.MaxSelectable = *p.MaxSelectable
	}
	if p.ShowLabels != nil {
		s.ShowLabels = *p.ShowLabels
	}
	if p.ShowLegend != nil {
		s.ShowLegend = Ptr(*p.ShowLegend)
	}
	if p.ShowRowNumbers != nil {
		s.ShowRowNumbers = Ptr(*p.ShowRowNumbers)
	}
	if p.ShowColumnHeaders != nil {
		s.ShowColumnHeaders = Ptr(*p.ShowColumnHeaders)
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.DefaultSeatSize != nil {
		s.DefaultSeatSize = Ptr(*p.DefaultSeatSize)
	}
	return s
}

// BackgroundPatch updates the background placement.
type BackgroundPatch struct {
	URL         *string  `json:"url,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	AspectRatio *float64 `json:"aspectRatio,omitempty"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Scale       *float64 `json:"scale,omitempty"`
	Locked      *bool    `json:"locked,omitempty"`
}

func (p BackgroundPatch) apply(b Background) Background {
	if p.URL != nil {
		b.URL = *p.URL
	}
	if p.Width != nil {
		b.Width = *p.Width
	}
	if p.Height != nil {
		b.Height = *p.Height
	}
	if p.AspectRatio != nil {
		b.AspectRatio = *p.AspectRatio
	}
	if p.X != nil {
		b.X = *p.X
	}
	if p.Y != nil {
		b.Y = *p.Y
	}
	if p.Scale != nil {
		b.Scale = Ptr(*p.Scale)
	}
	if p.Locked != nil {
		b.Locked = Ptr(*p.Locked)
	}
	return b
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}
