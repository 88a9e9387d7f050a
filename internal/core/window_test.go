package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartOfWeek_WednesdayReturnsPrecedingMonday(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	now := time.Date(2026, time.August, 26, 14, 30, 12, 0, time.Local)
	got := StartOfWeek(now)
	require.Equal(t, time.Date(2026, time.August, 24, 0, 0, 0, 0, time.Local), got)
}

func TestStartOfWeek_MondayNoonReturnsSameDayMidnight(t *testing.T) {
	now := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.Local)
	got := StartOfWeek(now)
	require.Equal(t, time.Date(2026, time.August, 24, 0, 0, 0, 0, time.Local), got)
}

func TestStartOfWeek_SundayReturnsSixDaysBack(t *testing.T) {
	// 2026-08-30 is a Sunday; its week started Monday the 24th.
	now := time.Date(2026, time.August, 30, 23, 59, 59, 0, time.Local)
	got := StartOfWeek(now)
	require.Equal(t, time.Date(2026, time.August, 24, 0, 0, 0, 0, time.Local), got)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.August, 26, 0, 0, 1, 0, time.Local)
	b := time.Date(2026, time.August, 26, 23, 59, 0, 0, time.Local)
	c := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.Local)
	require.True(t, SameDay(a, b))
	require.False(t, SameDay(a, c))
}

func TestWeekFilter_IncludesWeekStartBoundary(t *testing.T) {
	now := time.Date(2026, time.August, 26, 10, 0, 0, 0, time.Local)
	pred := WeekFilter(now)
	monday := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.Local)
	require.True(t, pred(monday))
	require.False(t, pred(monday.Add(-time.Second)))
	require.True(t, pred(now))
}

func TestTodayFilter_MatchesDateOnly(t *testing.T) {
	now := time.Date(2026, time.August, 26, 10, 0, 0, 0, time.Local)
	pred := TodayFilter(now)
	require.True(t, pred(time.Date(2026, time.August, 26, 23, 0, 0, 0, time.Local)))
	require.False(t, pred(time.Date(2026, time.August, 25, 23, 0, 0, 0, time.Local)))
}
