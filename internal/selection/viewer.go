package selection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
)

// ToggleResult describes how a viewer toggle changed the selection.
type ToggleResult struct {
	Added   []string
	Removed []string
}

// Changed reports whether the toggle had any effect.
func (r ToggleResult) Changed() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// ToggleForViewer applies a buyer's click on a seat. Sold and blocked seats
// are ignored. Without multi-select the new seat replaces the selection.
// Once maxSelectable seats are held, further additions are ignored.
func ToggleForViewer(sel *Set, seat document.Seat, settings document.Settings) ToggleResult {
	if sel.Contains(seat.ID) {
		return ToggleResult{Removed: sel.Remove(seat.ID)}
	}
	if !seat.StatusOrDefault().Selectable() {
		return ToggleResult{}
	}
	if !settings.AllowMultiSelect {
		removed := sel.IDs()
		sel.Replace(seat.ID)
		return ToggleResult{Added: []string{seat.ID}, Removed: removed}
	}
	if settings.MaxSelectable > 0 && sel.Len() >= settings.MaxSelectable {
		return ToggleResult{}
	}
	sel.Add(seat.ID)
	return ToggleResult{Added: []string{seat.ID}}
}

// Describe builds the spoken description of a seat, for example
// "Seat A1, available, Premium, Zone A, Row 1, $50".
func Describe(m *document.SeatMap, s document.Seat) string {
	parts := []string{"Seat " + s.Label, string(s.StatusOrDefault())}

	cat, hasCat := m.Category(s.CategoryID)
	if s.CategoryID != "" && hasCat {
		parts = append(parts, cat.Name)
	}
	zone, hasZone := m.Zone(s.ZoneID)
	if s.ZoneID != "" && hasZone {
		parts = append(parts, zone.Name)
	}
	if s.Row != nil {
		parts = append(parts, fmt.Sprintf("Row %d", *s.Row))
	}

	var price *float64
	if hasCat && s.CategoryID != "" {
		price = cat.Price
	}
	if price == nil && hasZone && s.ZoneID != "" {
		price = zone.Price
	}
	if price != nil {
		parts = append(parts, "$"+strconv.FormatFloat(*price, 'f', -1, 64))
	}
	return strings.Join(parts, ", ")
}
