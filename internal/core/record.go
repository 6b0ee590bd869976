package core

import (
	"encoding/json"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record category names the handlers write. The record itself is an
// open-ended mapping; nothing enforces this set.
const (
	CategoryIQ     = "IQ"
	CategoryLinks  = "Links"
	CategoryQuotes = "Quotes"
)

// Record is a user's accumulated data: category name -> scalar or list.
// Category insertion order survives JSON round-trips, so rendered
// snapshots stay stable.
type Record = orderedmap.OrderedMap[string, Value]

func NewRecord() *Record {
	return orderedmap.New[string, Value]()
}

// Value is one category's payload. It round-trips arbitrary JSON so old
// records never break on load, but the handlers only ever write an
// integer rating or an ordered string list.
type Value struct {
	raw json.RawMessage
}

func IntValue(n int) Value {
	raw, _ := json.Marshal(n)
	return Value{raw: raw}
}

func ListValue(items []string) Value {
	raw, _ := json.Marshal(items)
	return Value{raw: raw}
}

// Int reports the value as an integer scalar.
func (v Value) Int() (int, bool) {
	var n int
	if err := json.Unmarshal(v.raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

// List reports the value as an ordered string list.
func (v Value) List() ([]string, bool) {
	var items []string
	if err := json.Unmarshal(v.raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

// String renders a scalar value for display. Lists should be rendered
// item by item via List instead.
func (v Value) String() string {
	if n, ok := v.Int(); ok {
		return strconv.Itoa(n)
	}
	var s string
	if err := json.Unmarshal(v.raw, &s); err == nil {
		return s
	}
	return string(v.raw)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.raw == nil {
		return []byte("null"), nil
	}
	return v.raw, nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	v.raw = append(v.raw[:0], data...)
	return nil
}
