// Package redis wraps the go-redis client so repositories depend on a small
// interface that tests can swap for miniredis.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lamali292/one-piece-api/internal/errors"
)

const defaultDialTimeout = 5 * time.Second

// Options configures a single-instance client.
type Options struct {
	Addr        string
	Password    string
	DB          int
	PoolSize    int
	MaxRetries  int
	DialTimeout time.Duration
}

// Validate validates the Options.
func (o *Options) Validate() error {
	if o == nil {
		return errors.InvalidArgument("options cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("addr", o.Addr, vb)
	errors.ValidateMin("db", o.DB, 0, vb)
	errors.ValidateMin("pool_size", o.PoolSize, 0, vb)
	return vb.Build()
}

// NewClient creates a client. go-redis connects lazily, use Ping to check
// the server is reachable.
func NewClient(opts *Options) (Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dialTimeout := opts.DialTimeout
	if dialTimeout == 0 {
		dialTimeout = defaultDialTimeout
	}

	return redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		MaxRetries:  opts.MaxRetries,
		DialTimeout: dialTimeout,
	}), nil
}

// Ping reports whether the server answers.
func Ping(ctx context.Context, c Client) error {
	if err := c.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	return nil
}
