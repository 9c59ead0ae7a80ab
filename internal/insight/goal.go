package insight

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type GoalParts struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Third  string `json:"third"`
}

// Goal is either a single free-text goal or a three-part goal. Both wire
// shapes are accepted and round-trip unchanged: a bare JSON string stays a
// string, a {first,second,third} object stays an object.
type Goal struct {
	Text  string
	Parts *GoalParts
}

func (g Goal) IsZero() bool {
	return g.Text == "" && g.Parts == nil
}

func (g Goal) MarshalJSON() ([]byte, error) {
	if g.Parts != nil {
		return json.Marshal(g.Parts)
	}
	return json.Marshal(g.Text)
}

func (g *Goal) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		g.Text = s
		g.Parts = nil
		return nil
	}

	var parts GoalParts
	if err := json.Unmarshal(b, &parts); err != nil {
		return fmt.Errorf("goal must be a string or a {first,second,third} object: %w", err)
	}
	g.Text = ""
	g.Parts = &parts
	return nil
}

func (g Goal) Value() (driver.Value, error) {
	b, err := g.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (g *Goal) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*g = Goal{}
		return nil
	case []byte:
		return g.UnmarshalJSON(v)
	case string:
		return g.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan type %T into Goal", value)
	}
}

// GormDataType tells gorm to store the union as jsonb.
func (Goal) GormDataType() string {
	return "jsonb"
}
