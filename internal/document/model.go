package document

// SchemaVersion is the only seat-map schema tag this module reads and writes.
const SchemaVersion = "1.0"

// SeatMap is the seat-map document. It holds plain data only, so a JSON
// round trip always yields an independent deep copy.
type SeatMap struct {
	ID         string      `json:"id" validate:"required"`
	Version    string      `json:"version" validate:"eq=1.0"`
	Name       string      `json:"name" validate:"required"`
	CreatedAt  string      `json:"createdAt"`
	UpdatedAt  string      `json:"updatedAt"`
	Background Background  `json:"background"`
	Seats      []Seat      `json:"seats" validate:"dive"`
	Zones      []Zone      `json:"zones,omitempty" validate:"omitempty,dive"`
	Categories []Category  `json:"categories,omitempty" validate:"omitempty,dive"`
	Elements   []Element   `json:"elements,omitempty" validate:"omitempty,dive"`
	GridConfig *GridConfig `json:"gridConfig,omitempty"`
	Settings   *Settings   `json:"settings,omitempty"`
}

// Background references the venue image drawn under the seats. Width and
// Height are the natural pixel dimensions of the image.
type Background struct {
	URL         string   `json:"url" validate:"omitempty,uri"`
	Width       float64  `json:"width" validate:"gte=0"`
	Height      float64  `json:"height" validate:"gte=0"`
	AspectRatio float64  `json:"aspectRatio,omitempty" validate:"omitempty,gt=0"`
	X           float64  `json:"x,omitempty"`
	Y           float64  `json:"y,omitempty"`
	Scale       *float64 `json:"scale,omitempty" validate:"omitempty,gt=0"`
	Locked      *bool    `json:"locked,omitempty"`
}

// IsLocked reports whether the background is pinned. Unset means locked.
func (b Background) IsLocked() bool {
	return b.Locked == nil || *b.Locked
}

// ScaleOrDefault returns the background scale relative to its fitted size.
func (b Background) ScaleOrDefault() float64 {
	if b.Scale == nil {
		return 1
	}
	return *b.Scale
}

type SeatStatus string

const (
	StatusAvailable SeatStatus = "available"
	StatusReserved  SeatStatus = "reserved"
	StatusSold      SeatStatus = "sold"
	StatusBlocked   SeatStatus = "blocked"
)

// Selectable reports whether a buyer may pick a seat with this status.
func (s SeatStatus) Selectable() bool {
	return s != StatusSold && s != StatusBlocked
}

// Seat is a single bookable position. X and Y are the top-left corner in
// normalized canvas space.
type Seat struct {
	ID         string         `json:"id" validate:"required"`
	Label      string         `json:"label" validate:"required,max=20"`
	X          float64        `json:"x" validate:"gte=0,lte=1"`
	Y          float64        `json:"y" validate:"gte=0,lte=1"`
	W          float64        `json:"w" validate:"gte=0.005,lte=0.5"`
	H          float64        `json:"h" validate:"gte=0.005,lte=0.5"`
	R          float64        `json:"r,omitempty"`
	Row        *int           `json:"row,omitempty"`
	Column     *int           `json:"column,omitempty"`
	ZoneID     string         `json:"zoneId,omitempty"`
	CategoryID string         `json:"categoryId,omitempty"`
	Status     SeatStatus     `json:"status,omitempty" validate:"omitempty,oneof=available reserved sold blocked"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// StatusOrDefault returns the seat status, treating unset as available.
func (s Seat) StatusOrDefault() SeatStatus {
	if s.Status == "" {
		return StatusAvailable
	}
	return s.Status
}

// Center returns the seat center in normalized space.
func (s Seat) Center() (float64, float64) {
	return s.X + s.W/2, s.Y + s.H/2
}

type Category struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Color       string   `json:"color" validate:"required"`
	BorderColor string   `json:"borderColor,omitempty"`
	TextColor   string   `json:"textColor,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Order       *int     `json:"order,omitempty" validate:"omitempty,gte=0"`
}

// Zone is a named, priced region. Its bounds are derived from its seats.
type Zone struct {
	ID    string   `json:"id" validate:"required"`
	Name  string   `json:"name" validate:"required"`
	Color string   `json:"color" validate:"required"`
	Price *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

type ElementType string

const (
	ElementTextLabel    ElementType = "text-label"
	ElementIcon         ElementType = "icon"
	ElementDivider      ElementType = "divider"
	ElementRowNumber    ElementType = "row-number"
	ElementColumnHeader ElementType = "column-header"
)

// Element is a decorative or structural item: labels, icons, dividers.
type Element struct {
	ID       string      `json:"id" validate:"required"`
	Type     ElementType `json:"type" validate:"oneof=text-label icon divider row-number column-header"`
	X        float64     `json:"x" validate:"gte=0,lte=1"`
	Y        float64     `json:"y" validate:"gte=0,lte=1"`
	W        float64     `json:"w" validate:"gte=0,lte=1"`
	H        float64     `json:"h" validate:"gte=0,lte=1"`
	R        float64     `json:"r,omitempty"`
	Label    string      `json:"label,omitempty"`
	Icon     string      `json:"icon,omitempty" validate:"omitempty,oneof=restroom cafe exit stairs elevator info food bar vip"`
	FontSize float64     `json:"fontSize,omitempty" validate:"omitempty,gt=0"`
	Color    string      `json:"color,omitempty"`
}

type GridConfig struct {
	ColumnLabels         []string `json:"columnLabels,omitempty"`
	AisleAfterColumns    []int    `json:"aisleAfterColumns,omitempty" validate:"omitempty,dive,gte=0"`
	AisleWidth           float64  `json:"aisleWidth,omitempty" validate:"omitempty,gt=0"`
	RowNumbersVisible    *bool    `json:"rowNumbersVisible,omitempty"`
	ColumnHeadersVisible *bool    `json:"columnHeadersVisible,omitempty"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type SeatSize struct {
	W float64 `json:"w" validate:"gte=0.005,lte=0.5"`
	H float64 `json:"h" validate:"gte=0.005,lte=0.5"`
}

type Settings struct {
	AllowMultiSelect  bool      `json:"allowMultiSelect"`
	MaxSelectable     int       `json:"maxSelectable,omitempty" validate:"omitempty,gt=0"`
	ShowLabels        bool      `json:"showLabels"`
	ShowLegend        *bool     `json:"showLegend,omitempty"`
	ShowRowNumbers    *bool     `json:"showRowNumbers,omitempty"`
	ShowColumnHeaders *bool     `json:"showColumnHeaders,omitempty"`
	Theme             Theme     `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	DefaultSeatSize   *SeatSize `json:"defaultSeatSize,omitempty"`
}
