package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings persisted as a JSON-encoded
// TEXT column. It gives the stack/images/tech columns a typed value
// object instead of a raw encoded blob.
type StringList []string

// Value serialises the list for storage. A nil list is stored as "[]".
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("encode string list: %w", err)
	}
	return string(b), nil
}

// Scan decodes the stored JSON column back into the ordered list.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("decode string list: %w", err)
	}
	if items == nil {
		items = []string{}
	}
	*l = items
	return nil
}

// MarshalJSON renders a nil list as [] so API consumers always see an array.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal([]string(l))
}
