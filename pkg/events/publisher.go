package events

import (
	"context"
	"sync"
	"time"
)

const (
	RoutingKeyEmailSubmitted      = "email.submitted"
	RoutingKeyNotificationCreated = "notification.created"
)

// Publisher hands domain events to a broker. Publishing is best-effort from
// the caller's point of view: failures are reported but never undo the write
// that produced the event.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	IsConnected() bool
	Close() error
}

type EmailSubmitted struct {
	Email      string    `json:"email"`
	Source     string    `json:"source"`
	OccurredAt time.Time `json:"occurred_at"`
}

type NotificationCreated struct {
	NotificationID uint      `json:"notification_id"`
	Email          string    `json:"email"`
	Repository     string    `json:"repository"`
	Message        string    `json:"message"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
func (NoopPublisher) IsConnected() bool                          { return false }
func (NoopPublisher) Close() error                               { return nil }

// Message is one event captured by a Recorder.
type Message struct {
	RoutingKey string
	Payload    any
}

// Recorder keeps published events in memory. Tests use it in place of a broker.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	Err      error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, routingKey string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, Message{RoutingKey: routingKey, Payload: payload})
	return nil
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

func (r *Recorder) IsConnected() bool { return true }
func (r *Recorder) Close() error      { return nil }
