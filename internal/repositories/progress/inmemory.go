package progress

import (
	"context"
	"sort"
	"sync"

	"github.com/lamali292/one-piece-api/internal/errors"
	"github.com/lamali292/one-piece-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]map[string]Progress
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]map[string]Progress),
	}
}

func cloneProgress(p Progress) *Progress {
	nodes := make(map[string]int, len(p.Nodes))
	for k, v := range p.Nodes {
		nodes[k] = v
	}
	p.Nodes = nodes
	return &p
}

// Get retrieves a player's progress in a category
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.PlayerID, input.Category); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[input.PlayerID][input.Category]
	if !ok {
		return nil, errors.NotFoundf("no progress for player %s in %s", input.PlayerID, input.Category)
	}
	return &GetOutput{Progress: cloneProgress(p)}, nil
}

// Save creates or replaces a player's progress in a category
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateProgress(input.Progress); err != nil {
		return nil, err
	}

	saved := cloneProgress(*input.Progress)
	saved.UpdatedAt = r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.store[saved.PlayerID] == nil {
		r.store[saved.PlayerID] = make(map[string]Progress)
	}
	r.store[saved.PlayerID][saved.Category] = *saved

	return &SaveOutput{Progress: cloneProgress(*saved)}, nil
}

// Delete removes a player's progress in a category
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.PlayerID, input.Category); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[input.PlayerID][input.Category]; !ok {
		return nil, errors.NotFoundf("no progress for player %s in %s", input.PlayerID, input.Category)
	}
	delete(r.store[input.PlayerID], input.Category)

	return &DeleteOutput{}, nil
}

// ListByPlayerID returns every category a player has progress in
func (r *InMemoryRepository) ListByPlayerID(_ context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Progress, 0, len(r.store[input.PlayerID]))
	for _, p := range r.store[input.PlayerID] {
		out = append(out, cloneProgress(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })

	return &ListByPlayerIDOutput{Progress: out}, nil
}
