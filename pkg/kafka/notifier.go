package kafka

import (
	"context"
	"sync"
	"time"

	"eventhub/pkg/logger"
	"eventhub/pkg/middleware"
)

const DefaultPublishTimeout = 5 * time.Second

// Notifier announces newly created records on the change feed. Delivery is
// best effort: publishing happens in the background on a context detached
// from the request, and failures are only logged.
type Notifier struct {
	publisher Publisher
	source    string
	log       *logger.Logger
	timeout   time.Duration
	inflight  sync.WaitGroup
}

func NewNotifier(publisher Publisher, source string, log *logger.Logger) *Notifier {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	return &Notifier{
		publisher: publisher,
		source:    source,
		log:       log,
		timeout:   DefaultPublishTimeout,
	}
}

// WithPublishTimeout bounds each background publish. Non-positive values
// keep the default.
func (n *Notifier) WithPublishTimeout(d time.Duration) *Notifier {
	if d > 0 {
		n.timeout = d
	}
	return n
}

// Created publishes "<entity>.created" keyed by id with record as payload.
// The record is encoded before Created returns; delivery does not block the
// caller.
func (n *Notifier) Created(ctx context.Context, entity, id string, record any) {
	if n == nil {
		return
	}

	msg, err := NewMessage().
		WithKey(id).
		WithValue(record).
		WithEventType(entity + ".created").
		WithSource(n.source).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		Build()
	if err != nil {
		n.log.Warn("Failed to build change message", "entity", entity, "id", id, "error", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()
		defer cancel()
		n.publish(pubCtx, entity, id, msg)
	}()
}

func (n *Notifier) publish(ctx context.Context, entity, id string, msg Message) {
	if err := n.publisher.Publish(ctx, msg); err != nil {
		n.log.Warn("Failed to publish change message",
			"entity", entity,
			"id", id,
			"event_id", msg.EventID(),
			"error", err,
		)
		return
	}

	n.log.Debug("Change message published", "entity", entity, "id", id, "event_id", msg.EventID())
}

// Drain waits for in-flight publishes to finish or for ctx to end.
func (n *Notifier) Drain(ctx context.Context) error {
	if n == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		n.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
