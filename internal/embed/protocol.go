package embed

import (
	"encoding/json"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
)

// Message is one frame on the embed channel, in either direction.
type Message struct {
	Type     string          `json:"type"`
	MapID    string          `json:"mapId,omitempty"`
	ClientID string          `json:"clientId,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

const (
	// Host commands
	CmdSetStatus      = "seatmap:setStatus"
	CmdClearSelection = "seatmap:clearSelection"
	CmdSelectSeats    = "seatmap:selectSeats"
	CmdSetTheme       = "seatmap:setTheme"
	CmdToggleSeat     = "seatmap:toggleSeat"
	CmdNavigate       = "seatmap:navigate"

	// Viewer events
	EventReady         = "seatmap:ready"
	EventSelected      = "seatmap:selected"
	EventDeselected    = "seatmap:deselected"
	EventError         = "seatmap:error"
	EventFocus         = "seatmap:focus"
	EventStatusChanged = "seatmap:statusChanged"
	EventThemeChanged  = "seatmap:themeChanged"
)

// Error codes carried by EventError.
const (
	CodeInvalidMessage = "INVALID_MESSAGE"
	CodeInvalidPayload = "INVALID_PAYLOAD"
	CodeUnknownCommand = "UNKNOWN_COMMAND"
	CodeUnknownSeat    = "UNKNOWN_SEAT"
	CodeNotSelectable  = "NOT_SELECTABLE"
)

// StatusUpdate is one entry of a setStatus command. The command payload is
// a bare array of these.
type StatusUpdate struct {
	SeatID string              `json:"seatId"`
	Status document.SeatStatus `json:"status"`
}

type SelectSeatsPayload struct {
	SeatIDs []string `json:"seatIds"`
}

type ThemePayload struct {
	Theme document.Theme `json:"theme"`
}

type ToggleSeatPayload struct {
	SeatID string `json:"seatId"`
}

type NavigatePayload struct {
	SeatID    string `json:"seatId"`
	Direction string `json:"direction"`
}

type ReadyPayload struct {
	MapID string `json:"mapId"`
	Name  string `json:"name"`
	Seats int    `json:"seats"`
}

type SelectedPayload struct {
	Seats []document.Seat `json:"seats"`
}

type DeselectedPayload struct {
	SeatID string `json:"seatId"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type FocusPayload struct {
	SeatID      string `json:"seatId"`
	Description string `json:"description"`
}

type StatusChangedPayload struct {
	Updates []StatusUpdate `json:"updates"`
}

func newMessage(typ string, payload any) Message {
	msg := Message{Type: typ}
	if payload != nil {
		data, _ := json.Marshal(payload)
		msg.Payload = data
	}
	return msg
}

func errorMessage(code, message string) Message {
	return newMessage(EventError, ErrorPayload{Code: code, Message: message})
}
