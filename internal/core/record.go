// Package core implements the time-aggregation engine: activity
// records, the weekly goal table, calendar time windows, and
// goal-progress computation. Everything here is pure with respect to
// its inputs; the current time is always passed in.
package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Wire formats for the two timestamp fields. They differ on purpose:
// start_time is machine-sortable, end_time is kept human-readable.
const (
	StartTimeLayout = "2006-01-02 15:04:05"
	EndTimeLayout   = "01/02/2006 03:04 PM"
)

// Record is one logged occurrence of an activity. Records are immutable
// once created and only ever appended to the log; time_spent is the
// authoritative duration, end_time is display-only.
type Record struct {
	Activity  string
	StartTime time.Time
	EndTime   time.Time
	TimeSpent float64
}

type recordJSON struct {
	Activity  string  `json:"activity"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	TimeSpent float64 `json:"time_spent"`
	Duration  int     `json:"duration"`
}

// MarshalJSON writes the legacy document shape, including the unused
// duration field which is always 0.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Activity:  r.Activity,
		StartTime: r.StartTime.Format(StartTimeLayout),
		EndTime:   r.EndTime.Format(EndTimeLayout),
		TimeSpent: r.TimeSpent,
		Duration:  0,
	})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var w recordJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	start, err := time.ParseInLocation(StartTimeLayout, w.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("parse start_time %q: %w", w.StartTime, err)
	}
	// end_time is advisory; a missing or unparsable value falls back to
	// start + time_spent rather than failing the whole document.
	end, err := time.ParseInLocation(EndTimeLayout, w.EndTime, time.Local)
	if err != nil {
		end = start.Add(time.Duration(w.TimeSpent * float64(time.Minute)))
	}
	r.Activity = w.Activity
	r.StartTime = start
	r.EndTime = end
	r.TimeSpent = w.TimeSpent
	return nil
}

// NewRecord validates raw input from the entry surface and builds a
// record. The name is trimmed; aggregation downstream never normalizes
// further, so "Coding" and "coding" stay distinct activities.
func NewRecord(name string, date time.Time, hour, minute, durationMins int) (Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, fmt.Errorf("activity name cannot be empty")
	}
	if durationMins <= 0 {
		return Record{}, fmt.Errorf("duration must be a positive number of minutes")
	}
	if hour < 0 || hour > 23 {
		return Record{}, fmt.Errorf("hour must be between 0 and 23")
	}
	if minute < 0 || minute > 59 {
		return Record{}, fmt.Errorf("minute must be between 0 and 59")
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.Local)
	return Record{
		Activity:  name,
		StartTime: start,
		EndTime:   start.Add(time.Duration(durationMins) * time.Minute),
		TimeSpent: float64(durationMins),
	}, nil
}
