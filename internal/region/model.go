package region

import (
	"bytes"
	"encoding/json"
)

// FlexID tolerates both numeric and string ids. Upstream region payloads are
// inconsistent: path params arrive as strings while JSON bodies often carry
// numbers, so the raw token is kept as text and compared coerced.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// Region is immutable reference data (province, city or district).
// Identity is ID; it is only ever used for display-name lookup.
type Region struct {
	ID   FlexID `json:"id"`
	Name string `json:"name"`
}
