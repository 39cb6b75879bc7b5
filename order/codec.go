package order

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/milk9111/battingorder/roster"
)

type record struct {
	PlayerIDs []roster.ID `json:"playerIDs"`
}

// Encode serializes the order as {"playerIDs":[...]}.
func Encode(o Order) ([]byte, error) {
	data, err := json.Marshal(record{PlayerIDs: o.IDs()})
	if err != nil {
		return nil, fmt.Errorf("order: encode: %w", err)
	}
	return data, nil
}

// Decode parses a persisted record and validates it against the roster.
// Both the {"playerIDs":[...]} object and a bare id array are accepted.
func Decode(data []byte, r *roster.Roster) (Order, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Order{}, fmt.Errorf("order: decode: empty record")
	}

	var ids []roster.ID
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &ids); err != nil {
			return Order{}, fmt.Errorf("order: decode: %w", err)
		}
	} else {
		var rec record
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return Order{}, fmt.Errorf("order: decode: %w", err)
		}
		ids = rec.PlayerIDs
	}

	o, err := New(ids, r)
	if err != nil {
		return Order{}, fmt.Errorf("order: decode: %w", err)
	}
	return o, nil
}
