package shared

import "context"

// EventHandler reacts to domain events. EventTypes lists the types it wants
// when subscribed without explicit ones; nil means all of them.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	EventTypes() []string
}

type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

type EventSubscriber interface {
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
}

// EventBus is the publisher and subscriber the services are wired to
type EventBus interface {
	EventPublisher
	EventSubscriber
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// PublishAndClear drains the aggregate's pending events into publisher.
// The events are cleared even when publisher is nil.
func PublishAndClear(ctx context.Context, publisher EventPublisher, aggregate AggregateRoot) error {
	pending := aggregate.GetDomainEvents()
	aggregate.ClearDomainEvents()
	if publisher == nil || len(pending) == 0 {
		return nil
	}
	return publisher.Publish(ctx, pending...)
}
