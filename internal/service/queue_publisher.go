// Package queue_publisher provides functions to publish domain events to RabbitMQ.
// Errors are logged and returned so callers can ignore failures without
// interrupting the main request flow: a ticket purchase must never fail
// because the broker is down.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/oliFYP/RingReady/internal/queue"
)

const (
	TicketIssuedQueue = "ticket.issued"
	BoxerJoinedQueue  = "boxer.joined"
)

var brokerURL = q.BrokerURL("")

// SetBrokerURL points the publisher at the configured broker address.
// main calls it once at startup with config.Load's value; an empty
// value keeps the local broker default.
func SetBrokerURL(configured string) {
	brokerURL = q.BrokerURL(configured)
}

// PublishTicketIssued publishes a TicketIssuedEvent to the
// "ticket.issued" queue.  Messages are marked persistent so they
// survive broker restarts.
func PublishTicketIssued(ctx context.Context, event q.TicketIssuedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal ticket event failed: %v", err)
		return err
	}
	return publish(ctx, TicketIssuedQueue, body)
}

// PublishBoxerJoined publishes a BoxerJoinedEvent to the "boxer.joined" queue.
func PublishBoxerJoined(ctx context.Context, event q.BoxerJoinedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal boxer event failed: %v", err)
		return err
	}
	return publish(ctx, BoxerJoinedQueue, body)
}

// publish dials the broker, declares the durable queue (idempotent) and
// sends one persistent JSON message on the default exchange.  The
// connection is short-lived on purpose; publish volume here is a
// handful of messages per user action.
func publish(ctx context.Context, queueName string, body []byte) error {
	conn, err := amqp.Dial(brokerURL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
