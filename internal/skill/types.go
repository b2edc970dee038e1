package skill

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/lamali292/one-piece-api/internal/entities/item"
	"github.com/lamali292/one-piece-api/internal/identifier"
	"github.com/lamali292/one-piece-api/internal/repositories/progress"
)

// UpdateNodeInput defines the request for setting a node's unlocked count
type UpdateNodeInput struct {
	Player   core.Entity
	Category identifier.Identifier
	Node     identifier.Identifier
	Count    int
}

// UpdateNodeOutput defines the response for UpdateNode
type UpdateNodeOutput struct {
	Progress *progress.Progress
	// Failed is the number of rewards whose update failed and was skipped.
	Failed int
}

// ResetNodeInput defines the request for locking a node again
type ResetNodeInput struct {
	Player   core.Entity
	Category identifier.Identifier
	Node     identifier.Identifier
}

// ResetNodeOutput defines the response for ResetNode
type ResetNodeOutput struct {
	Progress *progress.Progress
	Failed   int
}

// RefreshInput defines the request for reapplying saved progress
type RefreshInput struct {
	Player core.Entity
}

// RefreshOutput defines the response for Refresh
type RefreshOutput struct {
	// Nodes is the number of nodes that were reapplied.
	Nodes  int
	Failed int
}

// DisposeCategoryInput defines the request for releasing a category
type DisposeCategoryInput struct {
	Category identifier.Identifier
	// Players whose rewards from the category are released.
	Players []core.Entity
}

// DisposeCategoryOutput defines the response for DisposeCategory
type DisposeCategoryOutput struct {
	Failed int
}

// GetProgressInput defines the request for reading progress
type GetProgressInput struct {
	PlayerID string
	Category identifier.Identifier
}

// GetProgressOutput defines the response for GetProgress
type GetProgressOutput struct {
	Progress *progress.Progress
}

// AwardItemInput defines the request for consuming an item's experience
type AwardItemInput struct {
	Player core.Entity
	Stack  *item.Stack
}

// Award is the experience one category received.
type Award struct {
	Category identifier.Identifier
	Amount   int
}

// AwardItemOutput defines the response for AwardItem
type AwardItemOutput struct {
	Awards []Award
	Total  int
	// Failed is the number of categories whose progress could not be loaded
	// or saved. They received nothing.
	Failed int
}

// TickInput defines the request for advancing a player's play time
type TickInput struct {
	Player core.Entity
	// Ticks elapsed since the last call. Zero means one tick.
	Ticks int64
}

// TickOutput defines the response for Tick
type TickOutput struct {
	Awards []Award
	Total  int
	// Failed is the number of categories whose progress could not be loaded
	// or saved. Their tick counters did not advance.
	Failed int
}
