package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"resume-builder/internal/domain"

	"github.com/streadway/amqp"
)

// AMQPNotifier publishes submission events to a topic exchange with routing
// key "submission.<type>".
type AMQPNotifier struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	exchange string
}

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &AMQPNotifier{conn: conn, exchange: exchange}, nil
}

func (n *AMQPNotifier) Notify(_ context.Context, ev domain.SubmissionEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch, err := n.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return ch.Publish(
		n.exchange,
		"submission."+ev.Type,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   ev.At,
			Body:        body,
		},
	)
}

func (n *AMQPNotifier) Close() error {
	return n.conn.Close()
}
