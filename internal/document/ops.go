package document

import "time"

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

var now = func() time.Time { return time.Now().UTC() }

func timestamp() string {
	return now().Format(timestampLayout)
}

// touch returns a shallow copy of m with a fresh updatedAt. Callers replace
// whichever collection they change, so the input is never written to.
func touch(m *SeatMap) *SeatMap {
	next := *m
	next.UpdatedAt = timestamp()
	return &next
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// AddSeats appends seats. Seats whose id is already present are skipped.
func AddSeats(m *SeatMap, seats ...Seat) *SeatMap {
	if m == nil {
		return nil
	}
	existing := make(map[string]struct{}, len(m.Seats))
	for _, s := range m.Seats {
		existing[s.ID] = struct{}{}
	}
	next := touch(m)
	next.Seats = make([]Seat, len(m.Seats), len(m.Seats)+len(seats))
	copy(next.Seats, m.Seats)
	for _, s := range seats {
		if _, dup := existing[s.ID]; dup {
			continue
		}
		existing[s.ID] = struct{}{}
		next.Seats = append(next.Seats, s)
	}
	return next
}

// UpdateSeats applies one patch to every seat in ids.
func UpdateSeats(m *SeatMap, ids []string, patch SeatPatch) *SeatMap {
	if m == nil {
		return nil
	}
	targets := idSet(ids)
	next := touch(m)
	next.Seats = make([]Seat, len(m.Seats))
	for i, s := range m.Seats {
		if _, ok := targets[s.ID]; ok {
			s = patch.Apply(s)
		}
		next.Seats[i] = s
	}
	return next
}

// SeatUpdate pairs a seat id with its own patch.
type SeatUpdate struct {
	ID    string    `json:"id"`
	Patch SeatPatch `json:"patch"`
}

// BatchUpdateSeats applies per-seat patches in order. Multiple patches for
// one id are applied in sequence.
func BatchUpdateSeats(m *SeatMap, updates []SeatUpdate) *SeatMap {
	if m == nil {
		return nil
	}
	byID := make(map[string][]SeatPatch, len(updates))
	for _, u := range updates {
		byID[u.ID] = append(byID[u.ID], u.Patch)
	}
	next := touch(m)
	next.Seats = make([]Seat, len(m.Seats))
	for i, s := range m.Seats {
		for _, p := range byID[s.ID] {
			s = p.Apply(s)
		}
		next.Seats[i] = s
	}
	return next
}

func DeleteSeats(m *SeatMap, ids []string) *SeatMap {
	if m == nil {
		return nil
	}
	targets := idSet(ids)
	next := touch(m)
	next.Seats = make([]Seat, 0, len(m.Seats))
	for _, s := range m.Seats {
		if _, ok := targets[s.ID]; ok {
			continue
		}
		next.Seats = append(next.Seats, s)
	}
	return next
}

func AddCategory(m *SeatMap, c Category) *SeatMap {
	if m == nil {
		return nil
	}
	if _, ok := m.Category(c.ID); ok {
		return touch(m)
	}
	next := touch(m)
	next.Categories = append(append([]Category(nil), m.Categories...), c)
	return next
}

func UpdateCategory(m *SeatMap, id string, patch CategoryPatch) *SeatMap {
	if m == nil {
		return nil
	}
	next := touch(m)
	next.Categories = make([]Category, len(m.Categories))
	for i, c := range m.Categories {
		if c.ID == id {
			c = patch.apply(c)
		}
		next.Categories[i] = c
	}
	return next
}

// DeleteCategory removes the category and clears it from every seat that
// referenced it.
func DeleteCategory(m *SeatMap, id string) *SeatMap {
	if m == nil {
		return nil
	}
	next := touch(m)
	next.Categories = make([]Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		if c.ID != id {
			next.Categories = append(next.Categories, c)
		}
	}
	next.Seats = make([]Seat, len(m.Seats))
	for i, s := range m.Seats {
		if s.CategoryID == id {
			s.CategoryID = ""
		}
		next.Seats[i] = s
	}
	return next
}

func AddZone(m *SeatMap, z Zone) *SeatMap {
	if m == nil {
		return nil
	}
	if _, ok := m.Zone(z.ID); ok {
		return touch(m)
	}
	next := touch(m)
	next.Zones = append(append([]Zone(nil), m.Zones...), z)
	return next
}

func UpdateZone(m *SeatMap, id string, patch ZonePatch) *SeatMap {
	if m == nil {
		return nil
	}
	next := touch(m)
	next.Zones = make([]Zone, len(m.Zones))
	for i, z := range m.Zones {
		if z.ID == id {
			z = patch.apply(z)
		}
		next.Zones[i] = z
	}
	return next
}

// DeleteZone removes the zone and clears it from every seat that
// referenced it.
func DeleteZone(m *SeatMap, id string) *SeatMap {
	if m == nil {
		return nil
	}
	next := touch(m)
	next.Zones = make([]Zone, 0, len(m.Zones))
	for _, z := range m.Zones {
		if z.ID != id {
			next.Zones = append(next.Zones, z)
		}
	}
	next.Seats = make([]Seat, len(m.Seats))
	for i, s := range m.Seats {
		if s.ZoneID == id {
			s.ZoneID = ""
		}
		next.Seats[i] = s
	}
	return next
}

func AddElement(m *SeatMap, e Element) *SeatMap {
	if m == nil {
		return nil
	}
	next := touch(m)
	next.Elements = append(append([]Element(nil), m.Elements...), e)
	return next
}

func UpdateElement(m *SeatMap, id string, patch ElementPatch) *SeatMap {
	if m == nil {
		return nil
	}
	next := touch(m)
	next.Elements = make([]Element, len(m.Elements))
	for i, e := range m.Elements {
		if e.ID == id {
			e = patch.apply(e)
		}
		next.Elements[i] = e
	}
	return next
}

func DeleteElement(m *SeatMap, id string) *SeatMap {
	if m == nil {
		return nil
	}
	next := touch(m)
	next.Elements = make([]Element, 0, len(m.Elements))
	for _, e := range m.Elements {
		if e.ID != id {
			next.Elements = append(next.Elements, e)
		}
	}
	return next
}

// UpdateGridConfig merges patch into the grid config, creating it if unset.
func UpdateGridConfig(m *SeatMap, patch GridConfigPatch) *SeatMap {
	if m == nil {
		return nil
	}
	var cur GridConfig
	if m.GridConfig != nil {
		cur = *m.GridConfig
	}
	merged := patch.apply(cur)
	next := touch(m)
	next.GridConfig = &merged
	return next
}

// UpdateSettings merges patch into the settings, starting from the defaults
// when the map has none.
func UpdateSettings(m *SeatMap, patch SettingsPatch) *SeatMap {
	if m == nil {
		return nil
	}
	merged := patch.apply(m.SettingsOrDefault())
	next := touch(m)
	next.Settings = &merged
	return next
}

func UpdateBackground(m *SeatMap, patch BackgroundPatch) *SeatMap {
	if m == nil {
		return nil
	}
	next := touch(m)
	next.Background = patch.apply(m.Background)
	return next
}

// RemoveBackground clears the image reference and its placement.
func RemoveBackground(m *SeatMap) *SeatMap {
	if m == nil {
		return nil
	}
	next := touch(m)
	next.Background = Background{}
	return next
}

func Rename(m *SeatMap, name string) *SeatMap {
	if m == nil {
		return nil
	}
	next := touch(m)
	next.Name = name
	return next
}
