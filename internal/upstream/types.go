package upstream

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Page is the list envelope both upstreams use: {"total": n, "data": [...]}.
// Total falls back to len(Data) for endpoints that omit it.
type Page[T any] struct {
	Total     int  `json:"total"`
	Page      int  `json:"page,omitempty"`
	PageSize  int  `json:"pageSize,omitempty"`
	Data      []T  `json:"data"`
	FromCache bool `json:"-"`
}

// Entity is a single record fetched by id.
type Entity[T any] struct {
	Data      T
	FromCache bool
}

// Text decodes a JSON string or number into a string; null becomes "".
// Registry identifiers arrive as either depending on the backing table.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }

// Number decodes a JSON number or numeric string; Postgres NUMERIC columns
// come back as strings from the registry. Valid is false for null, absent or
// unparseable values.
type Number struct {
	Value float64
	Valid bool
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*n = Number{}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		*n = Number{Value: v, Valid: true}
	}
	return nil
}

// MarshalJSON writes the value, or null when invalid.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Or returns the value when valid and def otherwise.
func (n Number) Or(def float64) float64 {
	if n.Valid {
		return n.Value
	}
	return def
}

// Flag decodes booleans that may arrive as true/false, "true"/"false", 0/1
// or null. Valid reports whether a value was present.
type Flag struct {
	Value bool
	Valid bool
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = Flag{}
	switch strings.Trim(strings.ToLower(string(b)), `"`) {
	case "true", "1", "t":
		*f = Flag{Value: true, Valid: true}
	case "false", "0", "f":
		*f = Flag{Value: false, Valid: true}
	}
	return nil
}

// MarshalJSON writes the value, or null when absent.
func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
