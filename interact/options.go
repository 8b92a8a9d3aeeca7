// SPDX-License-Identifier: MIT

package interact

import (
	"time"

	"go.uber.org/zap"
)

// Deterministic defaults.
const (
	DefaultTolerance   = 6.0                    // max cursor distance to hit a connection
	DefaultHoverRadius = 10.0                   // max cursor distance to hit a point
	DefaultDoubleClick = 400 * time.Millisecond // max gap between the two presses of a double click
)

// config aggregates every controller knob.
type config struct {
	tolerance   float64
	hoverRadius float64
	doubleClick time.Duration
	log         *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		tolerance:   DefaultTolerance,
		hoverRadius: DefaultHoverRadius,
		doubleClick: DefaultDoubleClick,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes a Controller.
type Option func(*config)

// WithTolerance sets the connection hit-test tolerance in screen units.
// Panics on non-positive values.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("interact: WithTolerance(non-positive)")
	}
	return func(c *config) { c.tolerance = tol }
}

// WithHoverRadius sets the point pick radius in screen units.
// Panics on non-positive values.
func WithHoverRadius(r float64) Option {
	if r <= 0 {
		panic("interact: WithHoverRadius(non-positive)")
	}
	return func(c *config) { c.hoverRadius = r }
}

// WithDoubleClick sets the double-click window. Panics on non-positive values.
func WithDoubleClick(d time.Duration) Option {
	if d <= 0 {
		panic("interact: WithDoubleClick(non-positive)")
	}
	return func(c *config) { c.doubleClick = d }
}

// WithLogger routes gesture logs to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("interact: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}
