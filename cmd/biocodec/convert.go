package main

import (
	"encoding/hex"
	"fmt"

	bio "github.com/mmushfiq/bio-object-logic"
)

func decodeHexKey(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("key must not be empty")
	}
	return b, nil
}

// jsonToRecord builds a properties record (spec.md §4.4) from a decoded
// JSON object. JSON's type system is coarser than bio's, so numbers become
// float64 (TypeDouble) and homogeneous arrays of numbers/strings become
// []float64/[]string; anything else is rejected rather than guessed at.
func jsonToRecord(obj map[string]any) (bio.Record, error) {
	rec := bio.NewRecord(0, 0, 0)
	for key, value := range obj {
		v, err := jsonValueToBio(value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		rec.Put(key, v)
	}
	return rec, nil
}

func jsonValueToBio(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return v, nil
	case float64:
		return v, nil
	case []any:
		return jsonArrayToBio(v)
	default:
		return nil, fmt.Errorf("unsupported JSON value %T", value)
	}
}

func jsonArrayToBio(items []any) (any, error) {
	if len(items) == 0 {
		return []string{}, nil
	}
	switch items[0].(type) {
	case string:
		out := make([]string, len(items))
		for i, it := range items {
			s, ok := it.(string)
			if !ok {
				return nil, fmt.Errorf("mixed-type array element %d", i)
			}
			out[i] = s
		}
		return out, nil
	case float64:
		out := make([]float64, len(items))
		for i, it := range items {
			f, ok := it.(float64)
			if !ok {
				return nil, fmt.Errorf("mixed-type array element %d", i)
			}
			out[i] = f
		}
		return out, nil
	case bool:
		out := make([]bool, len(items))
		for i, it := range items {
			b, ok := it.(bool)
			if !ok {
				return nil, fmt.Errorf("mixed-type array element %d", i)
			}
			out[i] = b
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported array element type %T", items[0])
	}
}

// recordToJSON is the inverse of jsonToRecord, used by decode/dump to
// render a decoded record back to a plain JSON-friendly map.
func recordToJSON(rec bio.Record) map[string]any {
	out := make(map[string]any, len(rec.Keys()))
	for _, key := range rec.Keys() {
		v, ok := rec.Get(key)
		if !ok {
			continue
		}
		out[key] = v
	}
	return out
}
