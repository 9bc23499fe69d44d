package commands

import (
	"testing"

	"PassVault/internal/cli/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionGate_RestoresFromStoredAuth(t *testing.T) {
	withTempConfig(t)
	loginAs(t, "alice", "tok-1")

	gate := newSessionGate()
	id, err := gate.Require()
	require.NoError(t, err)
	assert.Equal(t, session.Identity{Login: "alice"}, id)
}

func TestNewSessionGate_NoStoredToken(t *testing.T) {
	withTempConfig(t)

	gate := newSessionGate()
	_, err := gate.Require()
	assert.ErrorIs(t, err, session.ErrUnauthenticated)
}
