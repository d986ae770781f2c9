package broker

import (
	"context"
	"fmt"

	"github.com/ricartefelipe/payments-ledger/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher implements ports.OutboxPublisher, publishing events to the
// main payments topic exchange.
type Publisher struct {
	channel  *amqp.Channel
	exchange string
}

// NewPublisher creates a Publisher bound to the given Conn's main exchange.
func NewPublisher(conn *Conn, cfg config.RabbitMQConfig) *Publisher {
	return &Publisher{channel: conn.channel, exchange: cfg.MainExchange}
}

// Publish sends body as a persistent message to the main exchange under
// routingKey, carrying headers as AMQP message headers.
func (p *Publisher) Publish(ctx context.Context, routingKey string, body []byte, headers map[string]string) error {
	table := amqp.Table{}
	for k, v := range headers {
		table[k] = v
	}

	err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Headers:      table,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish to %s/%s: %w", p.exchange, routingKey, err)
	}
	return nil
}
