package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
)

// Loose is a JSON value accepted in whatever shape the client sent it.
// Set is true whenever the key was present, including an explicit null.
type Loose struct {
	Set bool
	Raw json.RawMessage
}

// UnmarshalJSON records presence; encoding/json calls it for null as well.
func (l *Loose) UnmarshalJSON(b []byte) error {
	l.Set = true
	l.Raw = append(l.Raw[:0], b...)
	return nil
}

// MarshalJSON writes the raw value back, or null when absent.
func (l Loose) MarshalJSON() ([]byte, error) {
	if !l.Set || len(l.Raw) == 0 {
		return []byte("null"), nil
	}
	return l.Raw, nil
}

// LooseOf builds a present Loose from any JSON-encodable value. Handy in tests.
func LooseOf(v any) Loose {
	raw, err := json.Marshal(v)
	if err != nil {
		return Loose{}
	}
	return Loose{Set: true, Raw: raw}
}

// IsNull reports whether the value was present and literally null.
func (l Loose) IsNull() bool {
	return l.Set && bytes.Equal(bytes.TrimSpace(l.Raw), []byte("null"))
}

// ParseInt reads the value as an integer the way a lenient form would:
// numbers are truncated toward zero and strings contribute their leading
// signed decimal digits. ok is false when no integer can be read.
func (l Loose) ParseInt() (n int, ok bool) {
	if !l.Set {
		return 0, false
	}
	raw := bytes.TrimSpace(l.Raw)
	if len(raw) == 0 {
		return 0, false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		return leadingInt(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return 0, false
		}
		f = math.Trunc(f)
		if f > math.MaxInt32 || f < math.MinInt32 {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// Int coerces the value to an integer, using def when the value is absent,
// unreadable or zero.
func (l Loose) Int(def int) int {
	n, ok := l.ParseInt()
	if !ok || n == 0 {
		return def
	}
	return n
}

// String returns the value when it is a JSON string, "" otherwise.
func (l Loose) String() string {
	if !l.Set {
		return ""
	}
	var s string
	if err := json.Unmarshal(l.Raw, &s); err != nil {
		return ""
	}
	return s
}

// NullableString returns nil for null or non-string values.
func (l Loose) NullableString() *string {
	if !l.Set || l.IsNull() {
		return nil
	}
	var s string
	if err := json.Unmarshal(l.Raw, &s); err != nil {
		return nil
	}
	return &s
}

// Items decodes an inventory list. Anything that is not an array yields an
// empty list.
func (l Loose) Items() []ItemInput {
	if !l.Set {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(l.Raw, &elems); err != nil {
		return nil
	}
	items := make([]ItemInput, len(elems))
	for i, elem := range elems {
		// Elements that are not objects become an item with both fields absent.
		_ = json.Unmarshal(elem, &items[i])
	}
	return items
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
		if n > math.MaxInt32 {
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
