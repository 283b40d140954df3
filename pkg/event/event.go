// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	LevelStarted   Type = "level_started"
	CraftLaunched  Type = "craft_launched"
	LaunchCanceled Type = "launch_canceled"
	FlightEnded    Type = "flight_ended"
	LevelCompleted Type = "level_completed"
	GameFinished   Type = "game_finished"
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

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// Specific event implementations

// LevelEvent carries information about level lifecycle events.
type LevelEvent struct {
	BaseEvent
	LevelIndex int
	LevelName  string
	Attempts   int
}

// NewLevelEvent creates a new level event
func NewLevelEvent(eventType Type, source interface{}, index int, name string, attempts int) *LevelEvent {
	return &LevelEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		LevelIndex: index,
		LevelName:  name,
		Attempts:   attempts,
	}
}

// LaunchEvent carries the launch parameters of a flight.
type LaunchEvent struct {
	BaseEvent
	Power float64
	Angle float64
}

// NewLaunchEvent creates a new launch event
func NewLaunchEvent(source interface{}, power, angle float64) *LaunchEvent {
	return &LaunchEvent{
		BaseEvent: BaseEvent{
			EventType: CraftLaunched,
			Source:    source,
		},
		Power: power,
		Angle: angle,
	}
}

// FlightOutcome names how a flight ended.
type FlightOutcome string

const (
	OutcomeGoal      FlightOutcome = "goal"
	OutcomeCollision FlightOutcome = "collision"
	OutcomeLost      FlightOutcome = "out_of_bounds"
)

// FlightEvent carries the terminal outcome of a flight.
type FlightEvent struct {
	BaseEvent
	LevelIndex int
	Outcome    FlightOutcome
	Ticks      uint64
}

// NewFlightEvent creates a new flight-ended event
func NewFlightEvent(source interface{}, index int, outcome FlightOutcome, ticks uint64) *FlightEvent {
	return &FlightEvent{
		BaseEvent: BaseEvent{
			EventType: FlightEnded,
			Source:    source,
		},
		LevelIndex: index,
		Outcome:    outcome,
		Ticks:      ticks,
	}
}
