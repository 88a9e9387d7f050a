package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRecord_BuildsStartAndEnd(t *testing.T) {
	day := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.Local)
	r, err := NewRecord("Coding", day, 14, 30, 45)
	require.NoError(t, err)
	require.Equal(t, "Coding", r.Activity)
	require.Equal(t, time.Date(2026, time.August, 26, 14, 30, 0, 0, time.Local), r.StartTime)
	require.Equal(t, time.Date(2026, time.August, 26, 15, 15, 0, 0, time.Local), r.EndTime)
	require.Equal(t, 45.0, r.TimeSpent)
}

func TestNewRecord_TrimsName(t *testing.T) {
	day := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.Local)
	r, err := NewRecord("  Reading ", day, 9, 0, 30)
	require.NoError(t, err)
	require.Equal(t, "Reading", r.Activity)
}

func TestNewRecord_RejectsInvalidInput(t *testing.T) {
	day := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.Local)

	_, err := NewRecord("", day, 9, 0, 30)
	require.Error(t, err)

	_, err = NewRecord("   ", day, 9, 0, 30)
	require.Error(t, err)

	_, err = NewRecord("Coding", day, 9, 0, 0)
	require.Error(t, err)

	_, err = NewRecord("Coding", day, 9, 0, -5)
	require.Error(t, err)

	_, err = NewRecord("Coding", day, 24, 0, 30)
	require.Error(t, err)

	_, err = NewRecord("Coding", day, 9, 60, 30)
	require.Error(t, err)
}

func TestRecord_MarshalWritesLegacyShape(t *testing.T) {
	day := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.Local)
	r, err := NewRecord("Coding", day, 14, 30, 45)
	require.NoError(t, err)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"activity": "Coding",
		"start_time": "2026-08-26 14:30:00",
		"end_time": "08/26/2026 03:15 PM",
		"time_spent": 45,
		"duration": 0
	}`, string(data))
}

func TestRecord_RoundTrip(t *testing.T) {
	day := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.Local)
	orig, err := NewRecord("Coding", day, 14, 30, 45)
	require.NoError(t, err)

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var got Record
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, orig.Activity, got.Activity)
	require.True(t, orig.StartTime.Equal(got.StartTime))
	require.Equal(t, orig.TimeSpent, got.TimeSpent)
}

func TestRecord_UnmarshalBadStartTimeFails(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"activity":"X","start_time":"not a time","end_time":"","time_spent":5,"duration":0}`), &r)
	require.Error(t, err)
}

func TestRecord_UnmarshalToleratesBadEndTime(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"activity":"X","start_time":"2026-08-26 09:00:00","end_time":"whenever","time_spent":30,"duration":0}`), &r)
	require.NoError(t, err)
	require.True(t, r.EndTime.Equal(r.StartTime.Add(30*time.Minute)))
}
