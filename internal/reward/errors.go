package reward

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/lamali292/one-piece-api/internal/errors"
)

func missingCapability(player core.Entity, capability string) error {
	if player == nil {
		return errors.InvalidArgument("player cannot be nil")
	}
	return errors.FailedPreconditionf("player %s does not support %s", player.GetID(), capability).
		WithMeta("player_id", player.GetID()).
		WithMeta("player_type", player.GetType())
}
