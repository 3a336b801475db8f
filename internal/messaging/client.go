package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// MailPublisher queues outbound mail.
type MailPublisher interface {
	PublishMail(ctx context.Context, msg *MailMessage) error
	Close() error
}

// Client publishes to and consumes from the mail queue bound to a direct exchange.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
	breaker      *Breaker
}

func Dial(url, exchangeName, queueName string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
		breaker:      NewBreaker(DefaultBreakerConfig()),
	}

	if err := client.declare(); err != nil {
		client.Close()
		return nil, fmt.Errorf("declare topology: %w", err)
	}

	return client, nil
}

func (c *Client) declare() error {
	if err := c.channel.ExchangeDeclare(c.exchangeName, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := c.channel.QueueDeclare(c.queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// Direct exchange: the routing key is the queue name.
	if err := c.channel.QueueBind(c.queueName, c.queueName, c.exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

func (c *Client) PublishMail(ctx context.Context, msg *MailMessage) error {
	if !c.breaker.Allow() {
		return ErrCircuitOpen
	}

	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(ctx, c.exchangeName, c.queueName, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    msg.Timestamp,
		Type:         msg.Kind,
		Body:         body,
	})
	if err != nil {
		c.breaker.RecordFailure()
		return fmt.Errorf("publish message: %w", err)
	}
	c.breaker.RecordSuccess()

	slog.InfoContext(ctx, "Queued mail", "kind", msg.Kind, "queue", c.queueName)
	return nil
}

// ConsumeMail hands every delivery to handler until ctx is cancelled. Malformed
// messages are dropped, handler failures are requeued.
func (c *Client) ConsumeMail(ctx context.Context, handler func(context.Context, *MailMessage) error) error {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := c.channel.Consume(c.queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	slog.InfoContext(ctx, "Consuming mail queue", "queue", c.queueName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			handleDelivery(ctx, delivery, handler)
		}
	}
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func handleDelivery(ctx context.Context, delivery amqp091.Delivery, handler func(context.Context, *MailMessage) error) {
	process(ctx, delivery.Body, &delivery, handler)
}

func process(ctx context.Context, body []byte, ack acknowledger, handler func(context.Context, *MailMessage) error) {
	msg, err := MailMessageFromJSON(body)
	if err != nil {
		slog.ErrorContext(ctx, "Dropping malformed mail message", "error", err)
		_ = ack.Nack(false, false)
		return
	}

	if err := handler(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Mail delivery failed, requeueing", "kind", msg.Kind, "error", err)
		_ = ack.Nack(false, true)
		return
	}

	_ = ack.Ack(false)
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
