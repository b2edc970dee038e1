// Package testutils holds fixtures and helpers shared by package tests.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/lamali292/one-piece-api/internal/redis"
)

// NewRedisClient starts a miniredis server and connects a client to it. The
// returned func stops both; callers that run several repositories inside one
// test use it to reset state between subtests.
func NewRedisClient(t *testing.T) (redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "start miniredis")

	client, err := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, err, "connect to miniredis")

	return client, func() {
		_ = client.Close()
		mr.Close()
	}
}
