package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rezmoss/activtrack/internal/core"
)

// humanDuration renders whole minutes as "2 hrs 15 mins" style text.
func humanDuration(mins int) string {
	h := mins / 60
	m := mins % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d hr %d mins", h, m)
	case h > 0:
		if h == 1 {
			return "1 hr"
		}
		return fmt.Sprintf("%d hrs", h)
	case m == 1:
		return "1 min"
	default:
		return fmt.Sprintf("%d mins", m)
	}
}

// fmtMinutes renders a fractional minute total without a trailing .0
// for whole values.
func fmtMinutes(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sortedNames returns the activity names of a totals mapping in
// alphabetical order. Breakdown listings are sorted for stable output;
// this is purely a presentation choice.
func sortedNames(totals map[string]float64) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderBreakdown renders a per-activity minutes table with each
// activity's share of the window total.
func RenderBreakdown(title string, totals map[string]float64) string {
	var b strings.Builder
	fmt.Fprintln(&b, title)
	fmt.Fprintln(&b, strings.Repeat("-", 50))
	if len(totals) == 0 {
		fmt.Fprintln(&b, "No activities to display")
		return b.String()
	}
	var total float64
	for _, v := range totals {
		total += v
	}
	fmt.Fprintf(&b, "%-20s | %-12s | %s\n", "Activity", "Time", "Share")
	fmt.Fprintln(&b, strings.Repeat("-", 50))
	for _, name := range sortedNames(totals) {
		v := totals[name]
		fmt.Fprintf(&b, "%-20s | %-12s | %.1f%%\n", name, fmtMinutes(v)+" mins", v/total*100)
	}
	fmt.Fprintln(&b, strings.Repeat("-", 50))
	fmt.Fprintf(&b, "Total: %s mins\n", fmtMinutes(total))
	return b.String()
}

// RenderProgress renders the weekly goal progress table, one row per
// goal in goal-table order.
func RenderProgress(rows []core.GoalProgress) string {
	var b strings.Builder
	fmt.Fprintln(&b, "Activity Goal Progress")
	fmt.Fprintln(&b, strings.Repeat("-", 60))
	if len(rows) == 0 {
		fmt.Fprintln(&b, "No activity goals set")
		return b.String()
	}
	fmt.Fprintf(&b, "%-20s | %-11s | %-13s | %s\n", "Activity", "Goal (mins)", "Actual (mins)", "Percentage")
	fmt.Fprintln(&b, strings.Repeat("-", 60))
	for _, r := range rows {
		fmt.Fprintf(&b, "%-20s | %-11d | %-13s | %.1f%%\n", r.Activity, r.GoalMinutes, fmtMinutes(r.ActualMinutes), r.Percent)
	}
	return b.String()
}

// RenderGoals renders the informational goal listing.
func RenderGoals(goals *core.GoalTable) string {
	if goals.Len() == 0 {
		return "No activity goals set\n"
	}
	return core.FormatGoals(goals) + "\n"
}

// Report builds the plain-text report for one of the named ranges.
func Report(rng string, records []core.Record, goals *core.GoalTable, now time.Time) (string, error) {
	switch rng {
	case "today":
		totals := core.Aggregate(records, core.TodayFilter(now))
		return RenderBreakdown(fmt.Sprintf("Today's activity breakdown (%s)", now.Format("2006-01-02")), totals), nil
	case "week":
		totals := core.Aggregate(records, core.WeekFilter(now))
		start := core.StartOfWeek(now)
		return RenderBreakdown(fmt.Sprintf("Weekly activity breakdown (week starting %s)", start.Format("2006-01-02")), totals), nil
	case "progress":
		totals := core.Aggregate(records, core.WeekFilter(now))
		return RenderProgress(core.Progress(totals, goals)), nil
	case "goals":
		return RenderGoals(goals), nil
	default:
		return "", fmt.Errorf("unknown range %q", rng)
	}
}
