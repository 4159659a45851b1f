package services

import "context"

// EventSink receives domain events emitted by the core services.
// Implementations must never fail the business operation; delivery is
// best effort and errors are logged, not returned.
type EventSink interface {
	// Emit publishes one event. distinctID identifies the acting user.
	Emit(ctx context.Context, eventType string, distinctID string, properties map[string]any)
	// Close flushes any buffered events.
	Close()
}
