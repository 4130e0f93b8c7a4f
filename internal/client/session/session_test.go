package session

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	s := New()

	assert.False(t, s.Authenticated())
	assert.Empty(t, s.UserID())

	token, err := auth.GenerateToken("u1", []byte("secret"), time.Hour)
	require.NoError(t, err)

	s.SetToken(token)
	assert.True(t, s.Authenticated())
	assert.Equal(t, token, s.Token())
	assert.Equal(t, "u1", s.UserID())

	s.Clear()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.UserID())
}

func TestSessionUserID_GarbageToken(t *testing.T) {
	s := New()
	s.SetToken("not-a-jwt")

	assert.True(t, s.Authenticated())
	assert.Empty(t, s.UserID())
}
