package skill

import (
	"github.com/lamali292/one-piece-api/internal/errors"
)

// isolate runs a single reward or source call. A panic is turned into an
// INTERNAL error so one faulty behavior cannot take down the caller.
func isolate(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = errors.Recovered(v)
		}
	}()
	return fn()
}
