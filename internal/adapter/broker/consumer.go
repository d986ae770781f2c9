package broker

import (
	"context"
	"fmt"

	"github.com/ricartefelipe/payments-ledger/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Consumer implements ports.BrokerConsumer over a single AMQP channel.
type Consumer struct {
	conn *Conn
	log  zerolog.Logger
}

// NewConsumer creates a Consumer over conn's channel.
func NewConsumer(conn *Conn, log zerolog.Logger) *Consumer {
	return &Consumer{conn: conn, log: log}
}

// Consume declares a fair-dispatch prefetch and blocks, handing each
// delivery to handler. A handler error rejects the delivery without
// requeue, sending it to the queue's configured dead-letter target;
// retries for business effects belong to the outbox and webhook
// dispatchers, not to broker redelivery.
func (c *Consumer) Consume(ctx context.Context, queue string, prefetch int, handler ports.MessageHandler) error {
	if err := c.conn.channel.Qos(prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := c.conn.channel.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming %s: %w", queue, err)
	}

	c.log.Info().Str("queue", queue).Msg("broker consumer started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel for %s closed", queue)
			}
			msg := ports.InboundMessage{
				RoutingKey: d.RoutingKey,
				Body:       d.Body,
				Headers:    headersToStrings(d.Headers),
			}
			if err := handler(ctx, msg); err != nil {
				c.log.Error().Err(err).Str("routing_key", d.RoutingKey).Msg("inbound message handler failed")
				if nackErr := d.Nack(false, false); nackErr != nil {
					c.log.Error().Err(nackErr).Msg("nack delivery failed")
				}
				continue
			}
			if ackErr := d.Ack(false); ackErr != nil {
				c.log.Error().Err(ackErr).Msg("ack delivery failed")
			}
		}
	}
}

func headersToStrings(table amqp.Table) map[string]string {
	out := make(map[string]string, len(table))
	for k, v := range table {
		if s, ok := v.(string); ok {
			out[k] = s
		} else {
			out[k] = fmt.Sprintf("%v", v)
		}
	}
	return out
}
