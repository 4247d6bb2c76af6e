package complaint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "complaintdesk/internal/domain/complaint/valueobjects"
)

func TestComputeStats(t *testing.T) {
	items := sampleSet(t)
	resolved, err := items[1].ChangeStatus(PermissivePolicy{}, vo.StatusResolved, agent1, "", "", t0.Add(6*time.Hour))
	require.NoError(t, err)
	items[1] = resolved

	s := ComputeStats(items)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Submitted)
	assert.Equal(t, 1, s.Assigned)
	assert.Equal(t, 0, s.InProgress)
	assert.Equal(t, 1, s.Resolved)
	assert.Equal(t, 0, s.Closed)

	sum := 0
	for _, st := range vo.AllStatuses() {
		sum += s.Count(st)
	}
	assert.Equal(t, s.Total, sum)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestComputeWorkload(t *testing.T) {
	items := sampleSet(t)

	c3, err := items[1].AssignTo(PermissivePolicy{}, agent2, manager, t0.Add(6*time.Hour))
	require.NoError(t, err)
	c3, err = c3.ChangeStatus(PermissivePolicy{}, vo.StatusClosed, agent2, "", "", t0.Add(7*time.Hour))
	require.NoError(t, err)
	items[1] = c3

	archivedForAgent1, err := items[0].AssignTo(PermissivePolicy{}, agent1, manager, t0.Add(8*time.Hour))
	require.NoError(t, err)
	items[0] = archivedForAgent1

	rows := ComputeWorkload([]Actor{agent1, agent2, {ID: "agent-3", Name: "Idle"}}, items)

	require.Len(t, rows, 3)
	assert.Equal(t, AgentWorkload{AgentID: "agent-1", AgentName: "Amit Singh", Total: 1, Resolved: 0, Pending: 1}, rows[0])
	assert.Equal(t, AgentWorkload{AgentID: "agent-2", AgentName: "Neha Patel", Total: 1, Resolved: 1, Pending: 0}, rows[1])
	assert.Equal(t, AgentWorkload{AgentID: "agent-3", AgentName: "Idle"}, rows[2])
}
