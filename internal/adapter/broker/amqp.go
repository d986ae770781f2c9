// Package broker adapts the service to RabbitMQ via amqp091-go: a topic
// exchange for domain events (payments.x) plus two optional inbound
// exchanges for upstream systems (orders.x, saas.x), each backed by a
// durable queue. Only the main queue has a dead-letter target (the
// configured DLQ); the external queues are declared without one.
package broker

import (
	"context"
	"fmt"

	"github.com/ricartefelipe/payments-ledger/config"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Conn owns a single AMQP connection and channel, and declares the main
// payments topology on connect.
type Conn struct {
	cfg     config.RabbitMQConfig
	log     zerolog.Logger
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Connect dials RabbitMQ, opens a channel, and declares the main exchange,
// queue, and dead-letter queue.
func Connect(cfg config.RabbitMQConfig, log zerolog.Logger) (*Conn, error) {
	amqpCfg := amqp.Config{
		Heartbeat: cfg.HeartbeatInterval,
		Dial:      amqp.DefaultDial(cfg.BlockedConnTimeout),
	}

	conn, err := amqp.DialConfig(cfg.URL, amqpCfg)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	c := &Conn{cfg: cfg, log: log, conn: conn, channel: ch}
	if err := c.declareTopology(); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.Info().Str("exchange", cfg.MainExchange).Str("queue", cfg.MainQueue).Msg("rabbitmq topology declared")
	return c, nil
}

func (c *Conn) declareTopology() error {
	if err := c.channel.ExchangeDeclare(c.cfg.MainExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", c.cfg.MainExchange, err)
	}

	if _, err := c.channel.QueueDeclare(c.cfg.DeadLetterQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare dlq %s: %w", c.cfg.DeadLetterQueue, err)
	}

	args := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": c.cfg.DeadLetterQueue,
	}
	if _, err := c.channel.QueueDeclare(c.cfg.MainQueue, true, false, false, false, args); err != nil {
		return fmt.Errorf("declare queue %s: %w", c.cfg.MainQueue, err)
	}

	if err := c.channel.QueueBind(c.cfg.MainQueue, "#", c.cfg.MainExchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", c.cfg.MainQueue, err)
	}
	return nil
}

// DeclareExternal declares an inbound exchange/queue pair this service
// consumes from (orders.x, saas.x), bound to the given routing keys.
func (c *Conn) DeclareExternal(ctx context.Context, ext config.ExternalMQConfig) error {
	if ext.Exchange == "" || ext.Queue == "" {
		return nil
	}
	if err := c.channel.ExchangeDeclare(ext.Exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare external exchange %s: %w", ext.Exchange, err)
	}
	if _, err := c.channel.QueueDeclare(ext.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare external queue %s: %w", ext.Queue, err)
	}
	keys := ext.RoutingKeys
	if len(keys) == 0 {
		keys = []string{"#"}
	}
	for _, key := range keys {
		if err := c.channel.QueueBind(ext.Queue, key, ext.Exchange, false, nil); err != nil {
			return fmt.Errorf("bind external queue %s to %s: %w", ext.Queue, key, err)
		}
	}
	return nil
}

// Close tears down the channel and connection.
func (c *Conn) Close() error {
	var firstErr error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			firstErr = err
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NotifyClose surfaces connection-level errors so the caller can trigger a
// reconnect loop.
func (c *Conn) NotifyClose() chan *amqp.Error {
	ch := make(chan *amqp.Error, 1)
	c.conn.NotifyClose(ch)
	return ch
}
