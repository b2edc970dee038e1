package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories are written against.
// *redis.Client and the miniredis-backed test client both satisfy it.
type Client interface {
	redis.UniversalClient
}
