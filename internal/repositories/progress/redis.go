package progress

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/pkg/clock"
	redisclient "github.com/lamali292/one-piece-api/internal/redis"
)

const (
	progressKeyPrefix = "progress:data:"
	playerIndexPrefix = "progress:player:"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis progress repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed progress repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func progressKey(playerID, category string) string {
	return progressKeyPrefix + playerID + ":" + category
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.PlayerID, input.Category); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, progressKey(input.PlayerID, input.Category)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no progress for player %s in %s", input.PlayerID, input.Category)
		}
		return nil, errors.Wrapf(err, "failed to get progress")
	}

	var p Progress
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal progress")
	}
	if p.Nodes == nil {
		p.Nodes = make(map[string]int)
	}

	return &GetOutput{Progress: &p}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateProgress(input.Progress); err != nil {
		return nil, err
	}

	saved := *input.Progress
	saved.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&saved)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal progress")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, progressKey(saved.PlayerID, saved.Category), data, 0)
	pipe.SAdd(ctx, playerIndexPrefix+saved.PlayerID, saved.Category)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save progress")
	}

	return &SaveOutput{Progress: &saved}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.PlayerID, input.Category); err != nil {
		return nil, err
	}

	key := progressKey(input.PlayerID, input.Category)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("no progress for player %s in %s", input.PlayerID, input.Category)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, playerIndexPrefix+input.PlayerID, input.Category)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete progress")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	categories, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get categories from index %s", indexKey)
	}
	sort.Strings(categories)

	out := make([]*Progress, 0, len(categories))
	for _, category := range categories {
		got, err := r.Get(ctx, GetInput{PlayerID: input.PlayerID, Category: category})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "progress not found, cleaning up index",
					"player_id", input.PlayerID,
					"category", category)
				r.client.SRem(ctx, indexKey, category)
				continue
			}
			return nil, err
		}
		out = append(out, got.Progress)
	}

	slog.DebugContext(ctx, "listed progress by player",
		"player_id", input.PlayerID,
		"count", len(out))

	return &ListByPlayerIDOutput{Progress: out}, nil
}
