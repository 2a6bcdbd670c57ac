// Package messaging publishes domain events to RabbitMQ.
package messaging

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Message is a single event ready for the broker.
type Message struct {
	ID        string
	Type      string
	Body      []byte
	Timestamp time.Time
}

// Publisher delivers messages to a broker.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// AMQPConfig locates the broker and the destination queue.
type AMQPConfig struct {
	URL      string
	Exchange string
	Queue    string
}

// AMQPPublisher keeps one connection and channel open and re-dials after the broker
// drops them. Messages are persistent JSON and the queue is declared durable.
type AMQPPublisher struct {
	cfg    AMQPConfig
	logger *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPPublisher builds a publisher. The connection is opened on first publish.
func NewAMQPPublisher(cfg AMQPConfig, logger *zap.Logger) *AMQPPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AMQPPublisher{cfg: cfg, logger: logger}
}

// Publish sends msg to the configured queue, routed by queue name on the exchange.
func (p *AMQPPublisher) Publish(ctx context.Context, msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Type:         msg.Type,
		Timestamp:    ts,
		Body:         msg.Body,
	}
	if err := ch.PublishWithContext(ctx, p.cfg.Exchange, p.cfg.Queue, false, false, pub); err != nil {
		p.reset()
		return fmt.Errorf("publish %s: %w", msg.Type, err)
	}
	return nil
}

// channel returns an open channel, dialing and declaring the queue when needed.
// Callers hold p.mu.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() && p.conn != nil && !p.conn.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(p.cfg.Queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", p.cfg.Queue, err)
	}

	p.conn, p.ch = conn, ch
	p.logger.Info("broker connected", zap.String("queue", p.cfg.Queue))
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Close releases the broker connection.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

// NopPublisher drops every message.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, Message) error { return nil }

// Close implements Publisher.
func (NopPublisher) Close() error { return nil }
