package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Import parses and validates a serialized seat map. Any schema violation
// rejects the whole payload with a *ValidationError.
func Import(data []byte) (*SeatMap, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ValidationError{Issues: []Issue{decodeIssue(err)}}
	}
	if seats, ok := raw["seats"]; !ok || bytes.Equal(bytes.TrimSpace(seats), []byte("null")) {
		return nil, &ValidationError{Issues: []Issue{{Path: "seats", Message: "seats array is required"}}}
	}

	var m SeatMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ValidationError{Issues: []Issue{decodeIssue(err)}}
	}
	if err := Validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func decodeIssue(err error) Issue {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Issue{Path: typeErr.Field, Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return Issue{Message: fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset)}
	}
	return Issue{Message: "invalid JSON: " + err.Error()}
}

// Export serializes m in the import format.
func Export(m *SeatMap) ([]byte, error) {
	if m == nil {
		return nil, errors.New("export: document is empty")
	}
	if m.Seats == nil {
		withSeats := *m
		withSeats.Seats = []Seat{}
		m = &withSeats
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal seat map: %w", err)
	}
	return data, nil
}
