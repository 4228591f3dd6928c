package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Label is a status/type tag as stored by the dashboard. Historical rows carry
// either a bare string ("Active") or an object ({"name":"Active","color":"emerald"});
// both decode into the same canonical shape.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

func (l Label) IsZero() bool {
	return l.Name == "" && l.Color == ""
}

func (l *Label) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = Label{}
		return nil
	}
	if trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*l = Label{Name: name}
		return nil
	}
	type plain Label
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*l = Label(p)
	return nil
}

func (l Label) Value() (driver.Value, error) {
	raw, err := json.Marshal(struct {
		Name  string `json:"name"`
		Color string `json:"color,omitempty"`
	}(l))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (l *Label) Scan(value any) error {
	if value == nil {
		*l = Label{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return l.UnmarshalJSON(v)
	case string:
		return l.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("label: cannot scan %T", value)
	}
}

func (Label) GormDataType() string {
	return "jsonb"
}
