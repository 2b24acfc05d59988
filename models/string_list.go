package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as a JSON text column.
type StringList []string

// GormDataType backs the list with a text column.
func (StringList) GormDataType() string {
	return "text"
}

// Value serializes the list for storage. A nil list stores as "[]".
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan restores a list from its stored form. Unparseable text scans as an
// empty list rather than failing the whole query.
func (l *StringList) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		*l = StringList{}
		return nil
	}
	*l = items
	return nil
}

// MarshalJSON renders a nil list as an empty array.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
