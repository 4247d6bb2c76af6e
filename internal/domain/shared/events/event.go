package events

import (
	"time"
)

// DomainEvent is something that happened to an aggregate.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetOccurredAt() time.Time
	GetVersion() int
}

// BaseEvent provides common fields for all domain events
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
	Version     int       `json:"version"`
}

func NewBaseEvent(aggregateID, eventType string, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		AggregateID: aggregateID,
		EventType:   eventType,
		OccurredAt:  occurredAt,
		Version:     1,
	}
}

func (e BaseEvent) GetAggregateID() string {
	return e.AggregateID
}

func (e BaseEvent) GetEventType() string {
	return e.EventType
}

func (e BaseEvent) GetOccurredAt() time.Time {
	return e.OccurredAt
}

func (e BaseEvent) GetVersion() int {
	return e.Version
}

// EventHandler reacts to events of the types it can handle.
type EventHandler interface {
	Handle(event DomainEvent) error
	CanHandle(eventType string) bool
}

// Publisher is the side of the dispatcher that use cases depend on.
type Publisher interface {
	Publish(event DomainEvent) error
}

// EventDispatcher routes published events to subscribed handlers.
type EventDispatcher interface {
	Publisher
	Subscribe(eventType string, handler EventHandler) error
	Start() error
	Stop() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(DomainEvent) error { return nil }
