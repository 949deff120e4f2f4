package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher emits session lifecycle events on a durable queue for
// external consumers. Publishing is best effort; callers log failures
// and move on.
type Publisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

const (
	EventSessionCreated = "session.created"
	EventChatTurn       = "chat.turn"
	EventFilesUploaded  = "files.uploaded"
)

type Event struct {
	Event     string `json:"event"`
	SessionID string `json:"session_id,omitempty"`
	Count     int    `json:"count,omitempty"`
	Timestamp int64  `json:"ts"`
}

func NewPublisher(url, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Publish sends one event. A nil Publisher drops it, so wiring stays
// optional.
func (p *Publisher) Publish(ctx context.Context, event, sessionID string, count int) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(Event{
		Event:     event,
		SessionID: sessionID,
		Count:     count,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return err
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(cctx,
		"",      // default exchange
		p.queue, // routing key = queue
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
}
