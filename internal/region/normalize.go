package region

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ToList flattens the shapes region providers answer with: a bare array,
// an object wrapping the array under "data", or garbage. Malformed input
// degrades to an empty list on purpose; lookup data is display-only and a
// broken upstream response should never fail a page.
func ToList(raw json.RawMessage) []Region {
	if len(raw) == 0 {
		return []Region{}
	}

	var list []Region
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			return []Region{}
		}
		return list
	}

	var wrapped struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Data) > 0 {
		if err := json.Unmarshal(wrapped.Data, &list); err == nil && list != nil {
			return list
		}
	}

	return []Region{}
}

// FindName resolves an id to its display name. Ids are compared after string
// coercion so that a numeric 12 and a path-param "12" match. Empty string for
// a nil id, an empty list or no match.
func FindName(list []Region, id interface{}) string {
	if len(list) == 0 {
		return ""
	}

	candidate, ok := coerceID(id)
	if !ok {
		return ""
	}

	for _, r := range list {
		if string(r.ID) == candidate {
			return r.Name
		}
	}
	return ""
}

func coerceID(id interface{}) (string, bool) {
	switch v := id.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case FlexID:
		return string(v), true
	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case float64:
		// JSON numbers decode to float64; region ids are whole numbers
		return strconv.FormatInt(int64(v), 10), true
	default:
		return fmt.Sprint(v), true
	}
}
