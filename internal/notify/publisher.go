// Package notify публикует события подтвержденных бронирований в RabbitMQ.
// Уведомления асинхронные: ошибка доставки никогда не откатывает бронирование.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueBookingConfirmed очередь событий подтвержденных бронирований
const QueueBookingConfirmed = "booking.confirmed"

// publishTimeout таймаут одной попытки публикации
const publishTimeout = 5 * time.Second

// AMQPPublisher публикует события в durable-очередь RabbitMQ
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAMQPPublisher подключается к брокеру и объявляет очередь
func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("notify: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("notify: open channel: %w", err)
	}

	// Durable-очередь: сообщения переживают рестарт брокера
	if _, err := ch.QueueDeclare(
		QueueBookingConfirmed,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("notify: declare queue: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: ch}, nil
}

// Publish публикует событие одним сообщением с DeliveryMode=Persistent
func (p *AMQPPublisher) Publish(ctx context.Context, event *BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("notify: marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		"",                    // default exchange
		QueueBookingConfirmed, // routing key = queue name
		false,                 // mandatory
		false,                 // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("notify: publish: %w", err)
	}
	return nil
}

// Close закрывает канал и соединение
func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
