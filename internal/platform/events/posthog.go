// Package events implements the event sink on PostHog, with a no-op
// fallback for environments without an API key.
package events

import (
	"context"
	"log/slog"

	"github.com/posthog/posthog-go"

	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
)

// PostHogSink delivers domain events to PostHog.
type PostHogSink struct {
	client posthog.Client
	logger *slog.Logger
}

var _ portssvc.EventSink = (*PostHogSink)(nil)

// NewPostHogSink creates a PostHog-backed sink. Returns a no-op sink when
// the API key is empty so callers never need to branch.
func NewPostHogSink(apiKey, endpoint string, logger *slog.Logger) (portssvc.EventSink, error) {
	if apiKey == "" {
		logger.Info("event capture disabled, no api key configured")
		return NoopSink{}, nil
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, err
	}
	return &PostHogSink{client: client, logger: logger}, nil
}

// Emit publishes one event. Failures are logged and swallowed; event
// delivery must never fail a business operation.
func (s *PostHogSink) Emit(_ context.Context, eventType string, distinctID string, properties map[string]any) {
	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	if err := s.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      eventType,
		Properties: props,
	}); err != nil {
		s.logger.Warn("failed to enqueue event", "event", eventType, "error", err)
	}
}

// Close flushes buffered events.
func (s *PostHogSink) Close() {
	if err := s.client.Close(); err != nil {
		s.logger.Warn("failed to close event client", "error", err)
	}
}

// NoopSink discards every event.
type NoopSink struct{}

// Emit does nothing.
func (NoopSink) Emit(context.Context, string, string, map[string]any) {}

// Close does nothing.
func (NoopSink) Close() {}
