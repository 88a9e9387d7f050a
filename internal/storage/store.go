// Package storage persists the activity log and the goal table as two
// independent JSON documents on disk.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rezmoss/activtrack/internal/core"
)

const (
	DefaultActivityFile = "activity_data.json"
	DefaultGoalFile     = "goal_data.json"
)

// Store owns the two persisted collections. Every load hits the disk
// and every save rewrites the whole document; there is no caching, so
// a read always reflects the latest prior write. A missing or
// unreadable document is treated as empty, never as an error; write
// failures propagate to the caller.
type Store struct {
	activityPath string
	goalPath     string
}

func New(activityPath, goalPath string) *Store {
	return &Store{activityPath: activityPath, goalPath: goalPath}
}

// LoadActivities returns the persisted activity log, or an empty log
// when the document is absent or malformed.
func (s *Store) LoadActivities() []core.Record {
	data, err := os.ReadFile(s.activityPath)
	if err != nil {
		return nil
	}
	var records []core.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// SaveActivities replaces the persisted log with records.
func (s *Store) SaveActivities(records []core.Record) error {
	if records == nil {
		records = []core.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode activities: %w", err)
	}
	if err := writeAtomic(s.activityPath, data); err != nil {
		return fmt.Errorf("save activities: %w", err)
	}
	return nil
}

// LoadGoals returns the persisted goal table, or an empty table when
// the document is absent or malformed.
func (s *Store) LoadGoals() *core.GoalTable {
	goals := core.NewGoalTable()
	data, err := os.ReadFile(s.goalPath)
	if err != nil {
		return goals
	}
	if err := json.Unmarshal(data, goals); err != nil {
		return core.NewGoalTable()
	}
	return goals
}

// SaveGoals replaces the persisted goal table.
func (s *Store) SaveGoals(goals *core.GoalTable) error {
	data, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("encode goals: %w", err)
	}
	if err := writeAtomic(s.goalPath, data); err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	return nil
}

// writeAtomic writes through a temp file and renames it into place so
// a failed save never truncates the existing document.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
