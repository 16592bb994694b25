package embed

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/selection"
)

// Viewer is the read-mostly state behind one embedded seat map: its own
// copy of the map and the buyer's selection. It turns host commands into
// viewer events and is safe for concurrent use.
type Viewer struct {
	mu  sync.Mutex
	doc *document.SeatMap
	sel *selection.Set
}

func NewViewer(doc *document.SeatMap) *Viewer {
	return &Viewer{doc: document.MustClone(doc), sel: selection.NewSet()}
}

func (v *Viewer) Ready() Message {
	v.mu.Lock()
	defer v.mu.Unlock()
	return newMessage(EventReady, ReadyPayload{MapID: v.doc.ID, Name: v.doc.Name, Seats: len(v.doc.Seats)})
}

func (v *Viewer) Selection() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sel.IDs()
}

// Seat looks a seat up in the viewer's copy of the map.
func (v *Viewer) Seat(id string) (document.Seat, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.doc.Seat(id)
}

// Theme returns the theme the viewer currently renders with.
func (v *Viewer) Theme() document.Theme {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.doc.SettingsOrDefault().Theme
}

// Handle applies one host command and returns the events it produced.
func (v *Viewer) Handle(msg Message) []Message {
	switch msg.Type {
	case CmdSetStatus:
		updates, err := ParseStatusUpdates(msg.Payload)
		if err != nil {
			return []Message{errorMessage(CodeInvalidPayload, err.Error())}
		}
		return v.ApplyStatuses(updates)
	case CmdClearSelection:
		return v.clearSelection()
	case CmdSelectSeats:
		var p SelectSeatsPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return []Message{errorMessage(CodeInvalidPayload, "selectSeats: "+err.Error())}
		}
		return v.selectSeats(p.SeatIDs)
	case CmdSetTheme:
		var p ThemePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return []Message{errorMessage(CodeInvalidPayload, "setTheme: "+err.Error())}
		}
		return v.setTheme(p.Theme)
	case CmdToggleSeat:
		var p ToggleSeatPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return []Message{errorMessage(CodeInvalidPayload, "toggleSeat: "+err.Error())}
		}
		return v.toggleSeat(p.SeatID)
	case CmdNavigate:
		var p NavigatePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return []Message{errorMessage(CodeInvalidPayload, "navigate: "+err.Error())}
		}
		return v.navigate(p.SeatID, selection.Direction(p.Direction))
	default:
		return []Message{errorMessage(CodeUnknownCommand, fmt.Sprintf("unknown command %q", msg.Type))}
	}
}

// ParseStatusUpdates decodes and checks a setStatus payload.
func ParseStatusUpdates(payload json.RawMessage) ([]StatusUpdate, error) {
	var updates []StatusUpdate
	if err := json.Unmarshal(payload, &updates); err != nil {
		return nil, fmt.Errorf("setStatus: %w", err)
	}
	for _, u := range updates {
		switch u.Status {
		case document.StatusAvailable, document.StatusReserved, document.StatusSold, document.StatusBlocked:
		default:
			return nil, fmt.Errorf("setStatus: invalid status %q for seat %q", u.Status, u.SeatID)
		}
	}
	return updates, nil
}

// ApplyStatuses sets seat statuses and drops newly unselectable seats from
// the selection.
func (v *Viewer) ApplyStatuses(updates []StatusUpdate) []Message {
	if len(updates) == 0 {
		return nil
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	batch := make([]document.SeatUpdate, len(updates))
	for i, u := range updates {
		batch[i] = document.SeatUpdate{ID: u.SeatID, Patch: document.SeatPatch{Status: document.Ptr(u.Status)}}
	}
	v.doc = document.BatchUpdateSeats(v.doc, batch)

	before := v.sel.IDs()
	v.sel.Retain(func(id string) bool {
		s, ok := v.doc.Seat(id)
		return ok && s.StatusOrDefault().Selectable()
	})

	events := []Message{newMessage(EventStatusChanged, StatusChangedPayload{Updates: updates})}
	return append(events, v.selectionEvents(before)...)
}

func (v *Viewer) clearSelection() []Message {
	v.mu.Lock()
	defer v.mu.Unlock()
	before := v.sel.IDs()
	v.sel.Clear()
	return v.selectionEvents(before)
}

// selectSeats replaces the selection with the known seats among ids. The
// host decides what is selectable, so status is not checked.
func (v *Viewer) selectSeats(ids []string) []Message {
	v.mu.Lock()
	defer v.mu.Unlock()
	before := v.sel.IDs()
	v.sel.Clear()
	for _, s := range v.doc.SeatsByID(ids) {
		v.sel.Add(s.ID)
	}
	return v.selectionEvents(before)
}

func (v *Viewer) setTheme(theme document.Theme) []Message {
	if theme != document.ThemeLight && theme != document.ThemeDark {
		return []Message{errorMessage(CodeInvalidPayload, fmt.Sprintf("setTheme: invalid theme %q", theme))}
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.doc = document.UpdateSettings(v.doc, document.SettingsPatch{Theme: document.Ptr(theme)})
	return []Message{newMessage(EventThemeChanged, ThemePayload{Theme: theme})}
}

func (v *Viewer) toggleSeat(id string) []Message {
	v.mu.Lock()
	defer v.mu.Unlock()
	seat, ok := v.doc.Seat(id)
	if !ok {
		return []Message{errorMessage(CodeUnknownSeat, fmt.Sprintf("unknown seat %q", id))}
	}
	before := v.sel.IDs()
	selection.ToggleForViewer(v.sel, seat, v.doc.SettingsOrDefault())
	return v.selectionEvents(before)
}

func (v *Viewer) navigate(id string, dir selection.Direction) []Message {
	switch dir {
	case selection.Up, selection.Down, selection.Left, selection.Right:
	default:
		return []Message{errorMessage(CodeInvalidPayload, fmt.Sprintf("navigate: invalid direction %q", dir))}
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.doc.Seat(id); !ok {
		return []Message{errorMessage(CodeUnknownSeat, fmt.Sprintf("unknown seat %q", id))}
	}
	next, ok := selection.Neighbor(v.doc.Seats, id, dir)
	if !ok {
		return nil
	}
	seat, _ := v.doc.Seat(next)
	return []Message{newMessage(EventFocus, FocusPayload{SeatID: next, Description: selection.Describe(v.doc, seat)})}
}

// selectionEvents compares the selection with before. Any change yields a
// selected event with the full selection, then one deselected event per
// removed seat. Caller holds v.mu.
func (v *Viewer) selectionEvents(before []string) []Message {
	after := v.sel.IDs()
	prev := make(map[string]struct{}, len(before))
	for _, id := range before {
		prev[id] = struct{}{}
	}
	changed := false
	for _, id := range after {
		if _, ok := prev[id]; !ok {
			changed = true
		}
	}
	var removed []string
	for _, id := range before {
		if !v.sel.Contains(id) {
			removed = append(removed, id)
		}
	}
	if !changed && len(removed) == 0 {
		return nil
	}

	seats := v.doc.SeatsByID(after)
	events := []Message{newMessage(EventSelected, SelectedPayload{Seats: seats})}
	for _, id := range removed {
		events = append(events, newMessage(EventDeselected, DeselectedPayload{SeatID: id}))
	}
	return events
}
