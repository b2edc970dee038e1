package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/lamali292/one-piece-api/internal/errors"
	redisclient "github.com/lamali292/one-piece-api/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TestNewClientValidation() {
	testCases := []struct {
		name string
		opts *redisclient.Options
	}{
		{name: "nil options", opts: nil},
		{name: "missing addr", opts: &redisclient.Options{}},
		{name: "negative db", opts: &redisclient.Options{Addr: "localhost:6379", DB: -1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := redisclient.NewClient(tc.opts)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *ClientTestSuite) TestPing() {
	mr := miniredis.RunT(s.T())

	client, err := redisclient.NewClient(&redisclient.Options{Addr: mr.Addr()})
	s.Require().NoError(err)
	defer client.Close()
	s.NoError(redisclient.Ping(s.ctx, client))

	mr.Close()
	err = redisclient.Ping(s.ctx, client)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}
