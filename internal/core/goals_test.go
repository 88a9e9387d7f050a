package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGoalTable_SetAndLookup(t *testing.T) {
	goals := NewGoalTable()
	goals.SetHours("Reading", 5)
	mins, ok := goals.Minutes("Reading")
	require.True(t, ok)
	require.Equal(t, 300, mins)

	_, ok = goals.Minutes("reading")
	require.False(t, ok, "names are not normalized")
}

func TestGoalTable_OverwriteKeepsPosition(t *testing.T) {
	goals := NewGoalTable()
	goals.Set("A", 60)
	goals.Set("B", 120)
	goals.Set("A", 180)
	require.Equal(t, []string{"A", "B"}, goals.Names())
	mins, _ := goals.Minutes("A")
	require.Equal(t, 180, mins)
}

func TestGoalTable_JSONRoundTripPreservesOrder(t *testing.T) {
	goals := NewGoalTable()
	goals.Set("Writing", 120)
	goals.Set("Reading", 300)
	goals.Set("Coding", 600)

	data, err := json.Marshal(goals)
	require.NoError(t, err)
	require.Equal(t, `{"Writing":120,"Reading":300,"Coding":600}`, string(data))

	var got GoalTable
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, []string{"Writing", "Reading", "Coding"}, got.Names())
	mins, ok := got.Minutes("Reading")
	require.True(t, ok)
	require.Equal(t, 300, mins)
}

func TestGoalTable_UnmarshalRejectsNonObject(t *testing.T) {
	var g GoalTable
	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &g))
	require.Error(t, json.Unmarshal([]byte(`{"A":"lots"}`), &g))
}

func TestGoalTable_EmptyMarshal(t *testing.T) {
	data, err := json.Marshal(NewGoalTable())
	require.NoError(t, err)
	require.Equal(t, `{}`, string(data))
}
