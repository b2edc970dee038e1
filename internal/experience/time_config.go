package experience

import (
	"fmt"

	"github.com/lamali292/one-piece-api/internal/errors"
)

// TicksPerMinute is the server tick rate times sixty.
const TicksPerMinute = 60 * 20

// TimeConfig controls how often time sources are evaluated.
type TimeConfig struct {
	XPAmount        int `env:"XP_AMOUNT" envDefault:"50"`
	IntervalMinutes int `env:"XP_INTERVAL_MINUTES" envDefault:"60"`
}

// DefaultTimeConfig is 50 XP every hour.
func DefaultTimeConfig() TimeConfig {
	return TimeConfig{XPAmount: 50, IntervalMinutes: 60}
}

// Validate validates the TimeConfig.
func (c TimeConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	c.ValidateFields(vb)
	return vb.Build()
}

// ValidateFields adds the TimeConfig checks to an outer builder.
func (c TimeConfig) ValidateFields(vb *errors.ValidationBuilder) {
	errors.ValidateMin("xp_amount", c.XPAmount, 0, vb)
	errors.ValidateMin("interval_minutes", c.IntervalMinutes, 1, vb)
}

// IntervalTicks returns the interval in server ticks.
func (c TimeConfig) IntervalTicks() int64 {
	return int64(c.IntervalMinutes) * TicksPerMinute
}

func (c TimeConfig) String() string {
	return fmt.Sprintf("%d XP every %d minutes", c.XPAmount, c.IntervalMinutes)
}
