package hero

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CharacterInfo is a parsed lookup payload. Categories keeps the
// service's own key order so formatted output is reproducible.
type CharacterInfo struct {
	ID         string
	Name       string
	Categories *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, Attribute]]
}

// Attribute is a single category entry: a scalar or a list of strings.
type Attribute struct {
	scalar string
	list   []string
	isList bool
}

func (a *Attribute) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		a.isList = true
		return json.Unmarshal(trimmed, &a.list)
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		a.scalar = s
		return nil
	}

	// Numbers and booleans come through as their literal text
	a.scalar = string(trimmed)
	return nil
}

func (a Attribute) IsList() bool {
	return a.isList
}

func (a Attribute) List() []string {
	return a.list
}

// String renders the attribute the way replies show it: lists are
// comma-joined.
func (a Attribute) String() string {
	if a.isList {
		return strings.Join(a.list, ", ")
	}
	return a.scalar
}

// ParseCharacter decodes a fetch-by-id payload. The service signals
// failure in-band: response != "success" maps to ErrNotFound.
func ParseCharacter(data []byte) (*CharacterInfo, error) {
	payload := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, fmt.Errorf("failed to decode lookup payload: %w", err)
	}

	info := &CharacterInfo{
		Categories: orderedmap.New[string, *orderedmap.OrderedMap[string, Attribute]](),
	}

	var response string
	for pair := payload.Oldest(); pair != nil; pair = pair.Next() {
		switch pair.Key {
		case "response":
			_ = json.Unmarshal(pair.Value, &response)
		case "id":
			_ = json.Unmarshal(pair.Value, &info.ID)
		case "name":
			_ = json.Unmarshal(pair.Value, &info.Name)
		case "error":
			// in-band failure detail, surfaced via ErrNotFound below
		default:
			category := orderedmap.New[string, Attribute]()
			if err := json.Unmarshal(pair.Value, category); err != nil {
				continue
			}
			info.Categories.Set(pair.Key, category)
		}
	}

	if response != "success" {
		return nil, ErrNotFound
	}
	return info, nil
}
