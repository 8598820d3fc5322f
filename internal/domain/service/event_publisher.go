package service

import (
	"context"
	"time"
)

// Request lifecycle event types.
const (
	EventRequestCreated       = "added_vehicle.created"
	EventRequestStatusChanged = "added_vehicle.status_changed"
	EventRequestCompleted     = "added_vehicle.completed"
	EventRequestCancelled     = "added_vehicle.cancelled"
)

// RequestEvent announces a committed change to an added-vehicle request
type RequestEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	EntityID   string    `json:"added_vehicle_id"`
	VehicleID  string    `json:"vehicle_id"`
	ActorID    string    `json:"actor_id"`
	OwnerNIC   string    `json:"owner_nic"`
	Purpose    string    `json:"purpose"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRequestEvent publishes a request lifecycle event
	PublishRequestEvent(ctx context.Context, event *RequestEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
