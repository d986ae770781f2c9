package ports

import "context"

// InboundMessage is one delivery handed to the inbound consumer by the
// broker adapter.
type InboundMessage struct {
	RoutingKey string
	Body       []byte
	Headers    map[string]string
}

// MessageHandler processes one InboundMessage. Returning an error causes
// the broker adapter to reject the message without requeue, routing it to
// the dead-letter queue; retries for business effects are the outbox's
// responsibility, not the consumer's.
type MessageHandler func(ctx context.Context, msg InboundMessage) error

// BrokerConsumer consumes durable queues bound to topic exchanges.
type BrokerConsumer interface {
	// Consume blocks, dispatching each delivery to handler, until ctx is
	// canceled or an unrecoverable connection error occurs.
	Consume(ctx context.Context, queue string, prefetch int, handler MessageHandler) error
}
