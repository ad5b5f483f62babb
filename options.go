package repeat

import (
	"fmt"
	"log/slog"
)

const (
	// DefaultRedrawThreshold is how far the scroll offset may drift from the
	// last full render before the transform-only path gives up.
	DefaultRedrawThreshold float32 = 100

	// DefaultLookahead is the margin mounted beyond each end of the visible
	// window. Keep it at or above the redraw threshold, or drift between
	// renders can expose unmounted slots.
	DefaultLookahead float32 = 100
)

// managerConfig holds Manager settings collected from options.
type managerConfig struct {
	redrawThreshold float32
	lookahead       float32
	logger          *slog.Logger
}

func defaultManagerConfig() managerConfig {
	return managerConfig{
		redrawThreshold: DefaultRedrawThreshold,
		lookahead:       DefaultLookahead,
		logger:          repeatLogger,
	}
}

// Option configures a Manager.
type Option func(*managerConfig) error

// WithRedrawThreshold sets the drift, in content units, that forces a full
// render even when no neighbouring threshold was crossed.
func WithRedrawThreshold(units float32) Option {
	return func(c *managerConfig) error {
		if units < 0 {
			return fmt.Errorf("%w: redraw threshold %v < 0", ErrInvalidOption, units)
		}
		c.redrawThreshold = units
		return nil
	}
}

// WithLookahead sets the margin mounted beyond each end of the visible window.
func WithLookahead(units float32) Option {
	return func(c *managerConfig) error {
		if units < 0 {
			return fmt.Errorf("%w: lookahead %v < 0", ErrInvalidOption, units)
		}
		c.lookahead = units
		return nil
	}
}

// WithLogger sets the logger used for render and resize tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *managerConfig) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}
		c.logger = l
		return nil
	}
}
