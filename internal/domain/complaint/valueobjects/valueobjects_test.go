package valueobjects

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "submitted", input: "Submitted", want: StatusSubmitted},
		{name: "in progress with space", input: "In Progress", want: StatusInProgress},
		{name: "closed", input: "Closed", want: StatusClosed},
		{name: "lower case is rejected", input: "submitted", wantErr: true},
		{name: "snake case is rejected", input: "in_progress", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid complaint status")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusSubmitted, StatusAssigned, true},
		{StatusSubmitted, StatusInProgress, false},
		{StatusSubmitted, StatusResolved, false},
		{StatusAssigned, StatusInProgress, true},
		{StatusAssigned, StatusSubmitted, false},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusClosed, false},
		{StatusResolved, StatusClosed, true},
		{StatusResolved, StatusInProgress, true},
		{StatusClosed, StatusInProgress, true},
		{StatusClosed, StatusSubmitted, false},
		{StatusClosed, StatusClosed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsReopen(t *testing.T) {
	assert.True(t, StatusResolved.IsReopen(StatusInProgress))
	assert.True(t, StatusClosed.IsReopen(StatusInProgress))
	assert.False(t, StatusAssigned.IsReopen(StatusInProgress))
	assert.False(t, StatusClosed.IsReopen(StatusSubmitted))
}

func TestStatus_EveryValueHasTone(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), s)
		assert.NotEmpty(t, s.Tone(), s)
	}
	assert.False(t, Status("Pending").IsValid())
}

func TestPriority_Rank(t *testing.T) {
	got := []Priority{PriorityLow, PriorityCritical, PriorityMedium, PriorityHigh}
	sort.Slice(got, func(i, j int) bool { return got[i].Rank() < got[j].Rank() })

	assert.Equal(t, []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}, got)
	assert.Equal(t, AllPriorities(), got)
	assert.Greater(t, Priority("Urgent").Rank(), PriorityLow.Rank())
}

func TestNewPriority(t *testing.T) {
	p, err := NewPriority("Critical")
	require.NoError(t, err)
	assert.Equal(t, PriorityCritical, p)

	_, err = NewPriority("urgent")
	assert.EqualError(t, err, "invalid priority: urgent")
}

func TestNewCategory(t *testing.T) {
	for _, c := range AllCategories() {
		got, err := NewCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := NewCategory("Technical")
	assert.EqualError(t, err, "invalid category: Technical")
}
