package common

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintdesk/internal/interfaces/http/handlers/testutil"
	"complaintdesk/internal/shared/errors"
)

func TestCurrentActor(t *testing.T) {
	c, _ := testutil.NewTestContext(http.MethodGet, "/", nil)
	testutil.AsAgent(c)

	actor, err := CurrentActor(c)
	require.NoError(t, err)
	assert.Equal(t, Actor{ID: "agent-1", Name: "Mike Johnson", Role: "agent"}, actor)
}

func TestCurrentActor_NotAuthenticated(t *testing.T) {
	c, _ := testutil.NewTestContext(http.MethodGet, "/", nil)

	_, err := CurrentActor(c)
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}
