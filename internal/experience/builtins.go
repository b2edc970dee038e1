package experience

import (
	"github.com/lamali292/one-piece-api/internal/calculation"
	"github.com/lamali292/one-piece-api/internal/errors"
)

// RegisterBuiltins registers the item and time sources.
func RegisterBuiltins(reg *Registry, b *calculation.Builtins) error {
	if b == nil {
		return errors.InvalidArgument("builtins cannot be nil")
	}
	reg.Register(ItemID, ItemFactory(NewItemPrototype(b)))
	reg.Register(TimeID, TimeFactory(NewTimePrototype(b)))
	return nil
}
