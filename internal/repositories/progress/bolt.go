package progress

import (
	"context"
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/pkg/clock"
)

// BoltConfig contains configuration for the bbolt progress repository.
type BoltConfig struct {
	// Path is the database file. It is created when missing.
	Path  string
	Clock clock.Clock
}

// Validate validates the BoltConfig.
func (cfg *BoltConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// BoltRepository stores progress in a local bbolt file with one bucket per
// player keyed by category.
type BoltRepository struct {
	db    *bolt.DB
	clock clock.Clock
}

var _ Repository = (*BoltRepository)(nil)

// NewBolt opens the database file.
func NewBolt(cfg *BoltConfig) (*BoltRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to open %s", cfg.Path)
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &BoltRepository{db: db, clock: c}, nil
}

// Close closes the database file.
func (r *BoltRepository) Close() error {
	return r.db.Close()
}

// Get retrieves a player's progress in a category
func (r *BoltRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.PlayerID, input.Category); err != nil {
		return nil, err
	}

	var p *Progress
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(input.PlayerID))
		if b == nil {
			return nil
		}
		raw := b.Get([]byte(input.Category))
		if raw == nil {
			return nil
		}
		p = &Progress{}
		return json.Unmarshal(raw, p)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get progress")
	}
	if p == nil {
		return nil, errors.NotFoundf("no progress for player %s in %s", input.PlayerID, input.Category)
	}
	if p.Nodes == nil {
		p.Nodes = make(map[string]int)
	}

	return &GetOutput{Progress: p}, nil
}

// Save creates or replaces a player's progress in a category
func (r *BoltRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateProgress(input.Progress); err != nil {
		return nil, err
	}

	saved := *input.Progress
	saved.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&saved)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal progress")
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(saved.PlayerID))
		if err != nil {
			return err
		}
		return b.Put([]byte(saved.Category), data)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save progress")
	}

	return &SaveOutput{Progress: &saved}, nil
}

// Delete removes a player's progress in a category
func (r *BoltRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.PlayerID, input.Category); err != nil {
		return nil, err
	}

	found := false
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(input.PlayerID))
		if b == nil || b.Get([]byte(input.Category)) == nil {
			return nil
		}
		found = true
		return b.Delete([]byte(input.Category))
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete progress")
	}
	if !found {
		return nil, errors.NotFoundf("no progress for player %s in %s", input.PlayerID, input.Category)
	}

	return &DeleteOutput{}, nil
}

// ListByPlayerID returns every category a player has progress in. Bolt
// iterates keys in byte order, so the result is sorted by category.
func (r *BoltRepository) ListByPlayerID(_ context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	out := make([]*Progress, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(input.PlayerID))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var p Progress
			if err := json.Unmarshal(v, &p); err != nil {
				return errors.WrapWithCodef(err, errors.CodeDataLoss, "corrupt progress for %s", k)
			}
			if p.Nodes == nil {
				p.Nodes = make(map[string]int)
			}
			out = append(out, &p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list progress")
	}

	return &ListByPlayerIDOutput{Progress: out}, nil
}
