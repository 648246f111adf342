package prefs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mydehq/ryu/internal/types"
)

// Entry is the on-disk form of a preference value. The kind tag keeps ints,
// floats and bools distinct across a round-trip.
type Entry struct {
	Type  types.Kind      `json:"type"`
	Value json.RawMessage `json:"value"`
}

// EncodeEntries converts a snapshot to its tagged form
func EncodeEntries(s types.Snapshot) (map[string]Entry, error) {
	out := make(map[string]Entry, len(s))
	for key, v := range s {
		if v.IsZero() {
			return nil, fmt.Errorf("key %q has no value", key)
		}
		raw, err := json.Marshal(v.Interface())
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", key, err)
		}
		out[key] = Entry{Type: v.Kind(), Value: raw}
	}
	return out, nil
}

// DecodeEntries validates every entry and converts them back to a snapshot.
// Nothing is returned unless all entries are valid.
func DecodeEntries(entries map[string]Entry) (types.Snapshot, error) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(types.Snapshot, len(entries))
	for _, key := range keys {
		if key == "" {
			return nil, fmt.Errorf("empty key")
		}
		v, err := decodeValue(entries[key])
		if err != nil {
			return nil, fmt.Errorf("invalid entry %q: %w", key, err)
		}
		out[key] = v
	}
	return out, nil
}

func decodeValue(e Entry) (types.Value, error) {
	if len(e.Value) == 0 || bytes.Equal(bytes.TrimSpace(e.Value), []byte("null")) {
		return types.Value{}, fmt.Errorf("missing value")
	}

	switch e.Type {
	case types.KindBool:
		var b bool
		if err := json.Unmarshal(e.Value, &b); err != nil {
			return types.Value{}, err
		}
		return types.BoolValue(b), nil
	case types.KindInt:
		var i int64
		if err := json.Unmarshal(e.Value, &i); err != nil {
			return types.Value{}, err
		}
		return types.IntValue(i), nil
	case types.KindFloat:
		var f float64
		if err := json.Unmarshal(e.Value, &f); err != nil {
			return types.Value{}, err
		}
		return types.FloatValue(f), nil
	case types.KindString:
		var s string
		if err := json.Unmarshal(e.Value, &s); err != nil {
			return types.Value{}, err
		}
		return types.StringValue(s), nil
	}
	return types.Value{}, fmt.Errorf("unknown type %q", e.Type)
}
