package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Event[T] binds a topic name to its payload type.
type Event[T any] struct {
	topicName   string
	description string
}

// NewEvent declares a typed event. Events are usually package level variables.
func NewEvent[T any](name, description string) Event[T] {
	return Event[T]{topicName: name, description: description}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

func (e Event[T]) Description() string {
	return e.description
}

// Publish sends a typed event. The compiler ensures payload matches T.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], visitorID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Name(), err)
	}

	return p.Publish(ctx, Message{
		Topic:     event.Name(),
		VisitorID: visitorID,
		Payload:   data,
	})
}

// Subscribe decodes every message on the event's topic into T before
// calling handler.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], handler func(ctx context.Context, visitorID string, payload T) error) error {
	slog.Debug("Subscribing", "topic", event.Name(), "event", event.Description())
	return s.Subscribe(ctx, event.Name(), func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s event: %w", event.Name(), err)
		}
		return handler(ctx, msg.VisitorID, payload)
	})
}
