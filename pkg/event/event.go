// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-antigravity/pkg/physics"
)

// Type represents the type of event
type Type string

// Engine and input event types
const (
	BodyAdded       Type = "body_added"
	BodyRemoved     Type = "body_removed"
	BodyCollision   Type = "body_collision"
	BodyHitWall     Type = "body_hit_wall"
	BodyDragStarted Type = "body_drag_started"
	BodyDragEnded   Type = "body_drag_ended"
	BoundsChanged   Type = "bounds_changed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// HasSubscribers reports whether any handler listens for eventType.
func (b *Bus) HasSubscribers(eventType Type) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType]) > 0
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// BodyEvent reports a change to a single body
type BodyEvent struct {
	BaseEvent
	BodyID physics.BodyID
	Label  string
}

// NewBodyEvent creates a new body event
func NewBodyEvent(eventType Type, source interface{}, body *physics.Body) *BodyEvent {
	return &BodyEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		BodyID: body.ID,
		Label:  body.Label,
	}
}

// CollisionEvent describes a resolved contact between two bodies
type CollisionEvent struct {
	BaseEvent
	BodyA       physics.BodyID
	BodyB       physics.BodyID
	Normal      physics.Vector2D
	Penetration float64
	Impulse     float64
}

// NewCollisionEvent creates a new collision event from a manifold and the
// impulse magnitude applied while resolving it
func NewCollisionEvent(source interface{}, m physics.Manifold, impulse float64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: BodyCollision,
			Source:    source,
		},
		BodyA:       m.A.ID,
		BodyB:       m.B.ID,
		Normal:      m.Normal,
		Penetration: m.Penetration,
		Impulse:     impulse,
	}
}

// Axis names the world axis a wall hit happened on
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// WallHitEvent reports a body clamped back into the world bounds
type WallHitEvent struct {
	BaseEvent
	BodyID physics.BodyID
	Axis   Axis
	// Speed is the absolute axis velocity before the bounce.
	Speed float64
}

// NewWallHitEvent creates a new wall hit event
func NewWallHitEvent(source interface{}, id physics.BodyID, axis Axis, speed float64) *WallHitEvent {
	return &WallHitEvent{
		BaseEvent: BaseEvent{
			EventType: BodyHitWall,
			Source:    source,
		},
		BodyID: id,
		Axis:   axis,
		Speed:  speed,
	}
}

// BoundsEvent reports a world resize
type BoundsEvent struct {
	BaseEvent
	Width  float64
	Height float64
}

// NewBoundsEvent creates a new bounds event
func NewBoundsEvent(source interface{}, width, height float64) *BoundsEvent {
	return &BoundsEvent{
		BaseEvent: BaseEvent{
			EventType: BoundsChanged,
			Source:    source,
		},
		Width:  width,
		Height: height,
	}
}
