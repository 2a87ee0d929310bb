package testutil

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/facultyfeedback/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EventRecorder is an event handler that keeps what it is given. Subscribe
// it to the bus and inspect it after the call under test.
type EventRecorder struct {
	mu     sync.Mutex
	types  []string
	events []shared.DomainEvent
	err    error
}

var _ shared.EventHandler = (*EventRecorder)(nil)

// NewEventRecorder records eventTypes, or everything when none are given.
func NewEventRecorder(eventTypes ...string) *EventRecorder {
	return &EventRecorder{types: eventTypes}
}

func (r *EventRecorder) EventTypes() []string { return r.types }

func (r *EventRecorder) Handle(_ context.Context, event shared.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

// Types lists the recorded event types in arrival order
func (r *EventRecorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

// Saw reports whether an event of eventType has arrived
func (r *EventRecorder) Saw(eventType string) bool {
	return slices.Contains(r.Types(), eventType)
}

func (r *EventRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// FailWith makes later Handle calls return err after recording
func (r *EventRecorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *EventRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.err = nil
}

// WaitForEvents waits until rec holds at least n events.
func WaitForEvents(t *testing.T, rec *EventRecorder, n int, timeout time.Duration) bool {
	t.Helper()
	return WaitForCondition(t, func() bool { return rec.Count() >= n }, timeout, 10*time.Millisecond)
}

// StubEvent is a domain event with no aggregate behind it.
type StubEvent struct {
	shared.BaseDomainEvent
}

func NewStubEvent(eventType string) *StubEvent {
	return &StubEvent{BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Stub", uuid.New())}
}
