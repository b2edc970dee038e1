// Package progress defines the interface for player skill progress persistence
package progress

//go:generate mockgen -destination=mock/mock_repository.go -package=progressmock github.com/lamali292/one-piece-api/internal/repositories/progress Repository

import (
	"context"
	"time"

	"github.com/lamali292/one-piece-api/internal/errors"
)

const (
	// Error messages
	errProgressNil   = "progress cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
	errCategoryEmpty = "category cannot be empty"
)

// Progress is one player's state within one skill category.
type Progress struct {
	PlayerID string `json:"player_id"`
	Category string `json:"category"`
	// Nodes maps node id to its unlocked count.
	Nodes      map[string]int `json:"nodes"`
	Experience int            `json:"experience"`
	// TicksSinceXP counts ticks toward the next time experience award.
	TicksSinceXP int64     `json:"ticks_since_xp"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// New returns empty progress for a player in a category.
func New(playerID, category string) *Progress {
	return &Progress{
		PlayerID: playerID,
		Category: category,
		Nodes:    make(map[string]int),
	}
}

// Count returns the unlocked count of a node, zero when absent.
func (p *Progress) Count(node string) int {
	return p.Nodes[node]
}

// SetCount records a node count. A count of zero or less removes the node.
func (p *Progress) SetCount(node string, count int) {
	if p.Nodes == nil {
		p.Nodes = make(map[string]int)
	}
	if count <= 0 {
		delete(p.Nodes, node)
		return
	}
	p.Nodes[node] = count
}

func validateKey(playerID, category string) error {
	if playerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if category == "" {
		return errors.InvalidArgument(errCategoryEmpty)
	}
	return nil
}

func validateProgress(p *Progress) error {
	if p == nil {
		return errors.InvalidArgument(errProgressNil)
	}
	return validateKey(p.PlayerID, p.Category)
}

// Repository defines the interface for progress persistence
type Repository interface {
	// Get retrieves a player's progress in a category
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if no progress was saved
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a player's progress in a category
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a player's progress in a category
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if no progress was saved
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID returns every category a player has progress in, sorted
	// by category
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// GetInput defines the input for getting progress
type GetInput struct {
	PlayerID string
	Category string
}

// GetOutput defines the output for getting progress
type GetOutput struct {
	Progress *Progress
}

// SaveInput defines the input for saving progress
type SaveInput struct {
	Progress *Progress
}

// SaveOutput defines the output for saving progress
type SaveOutput struct {
	Progress *Progress
}

// DeleteInput defines the input for deleting progress
type DeleteInput struct {
	PlayerID string
	Category string
}

// DeleteOutput defines the output for deleting progress
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing a player's progress
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's progress
type ListByPlayerIDOutput struct {
	Progress []*Progress
}
