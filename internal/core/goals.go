package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// GoalTable maps activity names to weekly goal minutes. Iteration order
// is insertion order and survives a JSON round trip; progress reports
// depend on it. Names are compared byte-for-byte, no normalization.
type GoalTable struct {
	names   []string
	minutes map[string]int
}

func NewGoalTable() *GoalTable {
	return &GoalTable{minutes: map[string]int{}}
}

// Set stores a weekly goal in minutes. Overwriting an existing name
// keeps its original position.
func (g *GoalTable) Set(activity string, mins int) {
	if g.minutes == nil {
		g.minutes = map[string]int{}
	}
	if _, ok := g.minutes[activity]; !ok {
		g.names = append(g.names, activity)
	}
	g.minutes[activity] = mins
}

// SetHours stores a goal given as whole hours, the only unit the entry
// surface accepts.
func (g *GoalTable) SetHours(activity string, hours int) {
	g.Set(activity, hours*60)
}

// Minutes returns the goal for an activity and whether one is set.
func (g *GoalTable) Minutes(activity string) (int, bool) {
	if g == nil || g.minutes == nil {
		return 0, false
	}
	m, ok := g.minutes[activity]
	return m, ok
}

// Names returns activity names in insertion order.
func (g *GoalTable) Names() []string {
	if g == nil {
		return nil
	}
	return g.names
}

func (g *GoalTable) Len() int {
	if g == nil {
		return 0
	}
	return len(g.names)
}

// MarshalJSON writes a plain JSON object with keys in insertion order.
func (g *GoalTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range g.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", g.minutes[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the document's key order.
func (g *GoalTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("goal table: expected JSON object")
	}
	g.names = nil
	g.minutes = map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("goal table: non-string key")
		}
		var mins int
		if err := dec.Decode(&mins); err != nil {
			return fmt.Errorf("goal table: value for %q: %w", name, err)
		}
		g.Set(name, mins)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
