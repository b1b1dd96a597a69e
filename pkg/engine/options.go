package engine

import (
	"github.com/opd-ai/go-antigravity/pkg/event"
	"github.com/opd-ai/go-antigravity/pkg/logging"
	"github.com/opd-ai/go-antigravity/pkg/physics"
)

// Option customises an Engine at construction.
type Option func(*Engine)

// WithEventBus publishes engine events on bus instead of a private one.
func WithEventBus(bus *event.Bus) Option {
	return func(e *Engine) {
		if bus != nil {
			e.bus = bus
		}
	}
}

// WithLogger replaces the engine logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithBroadPhase overrides the strategy named in the config.
func WithBroadPhase(bp physics.BroadPhase) Option {
	return func(e *Engine) {
		if bp != nil {
			e.broadPhase = bp
		}
	}
}

// WithSessionID tags every engine log line with id.
func WithSessionID(id string) Option {
	return func(e *Engine) {
		e.sessionID = id
	}
}
