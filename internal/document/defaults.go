package document

import "github.com/seatmap/seatmap-editor/backend-go/internal/typeid"

const (
	// MaxSeats is the largest seat count a map may carry.
	MaxSeats = 5000

	MaxLabelLength = 20

	DefaultSeatSize   = 0.02
	DefaultAisleWidth = 0.03

	MinSeatSize = 0.005
	MaxSeatSize = 0.5

	// ZoneMargin pads derived zone bounds on every side.
	ZoneMargin = 0.01

	untitledName = "Untitled Map"
)

// StatusColors maps each seat status to its display color.
var StatusColors = map[SeatStatus]string{
	StatusAvailable: "#4CAF50",
	StatusReserved:  "#FFC107",
	StatusSold:      "#F44336",
	StatusBlocked:   "#9E9E9E",
}

// DefaultColumnLabels returns the A..Z labels used when a grid has no
// explicit column labels.
func DefaultColumnLabels() []string {
	labels := make([]string, 26)
	for i := range labels {
		labels[i] = string(rune('A' + i))
	}
	return labels
}

// DefaultSettings returns the settings assumed when a map carries none.
func DefaultSettings() Settings {
	return Settings{AllowMultiSelect: true, ShowLabels: true}
}

// Well-known ids of the starter categories.
const (
	CategoryStandard   = "standard"
	CategoryPremium    = "premium"
	CategoryVIP        = "vip"
	CategoryAccessible = "accessible"
)

// DefaultCategories returns the starter category set. Ids are stable so a
// map can be topped up with whichever ones it is missing.
func DefaultCategories() []Category {
	return []Category{
		{ID: CategoryStandard, Name: "Standard", Color: "#3b82f6", BorderColor: "#1d4ed8", TextColor: "#ffffff", Order: Ptr(0)},
		{ID: CategoryPremium, Name: "Premium", Color: "#8b5cf6", BorderColor: "#6d28d9", TextColor: "#ffffff", Order: Ptr(1)},
		{ID: CategoryVIP, Name: "VIP", Color: "#f59e0b", BorderColor: "#b45309", TextColor: "#000000", Order: Ptr(2)},
		{ID: CategoryAccessible, Name: "Accessible", Color: "#06b6d4", BorderColor: "#0e7490", TextColor: "#000000", Description: "Wheelchair accessible", Order: Ptr(3)},
	}
}

// NewEmptySeatMap returns a blank map with an 800x600 background slot and
// the light theme. An empty name falls back to "Untitled Map".
func NewEmptySeatMap(name string) *SeatMap {
	if name == "" {
		name = untitledName
	}
	ts := timestamp()
	settings := DefaultSettings()
	settings.Theme = ThemeLight
	return &SeatMap{
		ID:         typeid.NewSeatMapID(),
		Version:    SchemaVersion,
		Name:       name,
		CreatedAt:  ts,
		UpdatedAt:  ts,
		Background: Background{Width: 800, Height: 600},
		Seats:      []Seat{},
		Settings:   &settings,
	}
}

// SettingsOrDefault returns the map settings, or the defaults when unset.
func (m *SeatMap) SettingsOrDefault() Settings {
	if m == nil || m.Settings == nil {
		return DefaultSettings()
	}
	return *m.Settings
}

// SeatSizeOrDefault returns the configured default seat size.
func (m *SeatMap) SeatSizeOrDefault() SeatSize {
	s := m.SettingsOrDefault()
	if s.DefaultSeatSize == nil {
		return SeatSize{W: DefaultSeatSize, H: DefaultSeatSize}
	}
	return *s.DefaultSeatSize
}
