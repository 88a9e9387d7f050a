package core

import (
	"fmt"
	"strings"
	"time"
)

// Aggregate filters records by pred over their start time, groups the
// survivors by exact activity name and sums time_spent per group.
// Groups whose sum is not strictly positive are dropped; an empty
// result means "nothing to show", not an error.
func Aggregate(records []Record, pred func(time.Time) bool) map[string]float64 {
	totals := map[string]float64{}
	for _, r := range records {
		if pred(r.StartTime) {
			totals[r.Activity] += r.TimeSpent
		}
	}
	for name, sum := range totals {
		if sum <= 0 {
			delete(totals, name)
		}
	}
	return totals
}

// GoalProgress is one row of a weekly progress report.
type GoalProgress struct {
	Activity      string
	GoalMinutes   int
	ActualMinutes float64
	Percent       float64
}

// Progress joins weekly totals against the goal table. Goals are
// authoritative for which rows appear: every goal yields exactly one
// row, in goal insertion order, and activities without a goal never
// appear. Actual time defaults to 0 for goals with no logged records;
// percent is 0 when the goal is 0.
func Progress(weeklyTotals map[string]float64, goals *GoalTable) []GoalProgress {
	rows := make([]GoalProgress, 0, goals.Len())
	for _, name := range goals.Names() {
		goalMins, _ := goals.Minutes(name)
		actual := weeklyTotals[name]
		var pct float64
		if goalMins > 0 {
			pct = actual / float64(goalMins) * 100
		}
		rows = append(rows, GoalProgress{
			Activity:      name,
			GoalMinutes:   goalMins,
			ActualMinutes: actual,
			Percent:       pct,
		})
	}
	return rows
}

// FormatGoals renders the goal table as one line per activity, in
// insertion order, splitting each goal into whole hours and leftover
// minutes.
func FormatGoals(goals *GoalTable) string {
	var lines []string
	for _, name := range goals.Names() {
		mins, _ := goals.Minutes(name)
		lines = append(lines, fmt.Sprintf("%s: %d hours (%d minutes)", name, mins/60, mins%60))
	}
	return strings.Join(lines, "\n")
}
