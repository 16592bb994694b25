package document

import (
	"encoding/json"
	"fmt"
)

// Clone returns an independent deep copy of m. The document holds plain
// data only, so a JSON round trip is exact.
func Clone(m *SeatMap) (*SeatMap, error) {
	if m == nil {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal seat map: %w", err)
	}
	var out SeatMap
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal seat map: %w", err)
	}
	return &out, nil
}

// MustClone is Clone for documents already known to be serializable.
func MustClone(m *SeatMap) *SeatMap {
	out, err := Clone(m)
	if err != nil {
		panic(err)
	}
	return out
}

func cloneMetadata(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMetadata(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// CloneSeat returns a copy of s that shares no pointers or maps with it.
func CloneSeat(s Seat) Seat {
	if s.Row != nil {
		s.Row = Ptr(*s.Row)
	}
	if s.Column != nil {
		s.Column = Ptr(*s.Column)
	}
	s.Metadata = cloneMetadata(s.Metadata)
	return s
}
