// Package events publishes booking lifecycle events to a RabbitMQ
// topic exchange. The rest of the marketplace (notifications, captain
// dashboard, analytics) consumes them asynchronously; publishing is
// best-effort and never blocks or fails a committed booking.
package events

import (
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

// Publisher publishes events to a RabbitMQ topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   Logger
}

// Logger is the logging surface used by the publisher.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// NewPublisher connects to RabbitMQ and declares the exchange.
func NewPublisher(url, exchange string, logger Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("events: rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("events: rabbitmq exchange declare: %w", err)
	}

	return &Publisher{conn: conn, channel: ch, exchange: exchange, logger: logger}, nil
}

// Publish serializes the payload as JSON and publishes it under the
// given routing key.
func (p *Publisher) Publish(routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("events: marshal payload: %w", err)
	}

	if err := p.channel.Publish(
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		return fmt.Errorf("events: publish message: %w", err)
	}

	p.logger.Info("Published event %s/%s", p.exchange, routingKey)
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// NopPublisher discards events. Wired when the event stream is
// disabled in configuration.
type NopPublisher struct{}

// Publish discards the event.
func (NopPublisher) Publish(routingKey string, payload any) error {
	return nil
}
