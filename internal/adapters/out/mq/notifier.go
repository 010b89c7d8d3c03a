// Package mq publishes courier notifications to a RabbitMQ topic exchange.
// A separate push gateway consumes the messages and fans them out to devices.
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"dispatch/internal/pkg/errs"
)

const routingKeyCourierPush = "notify.courier.push"

// pushMessage is the wire format the push gateway expects.
type pushMessage struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Tokens []string `json:"tokens"`
}

// RabbitNotifier implements ports.Notifier on top of a durable topic exchange.
type RabbitNotifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewRabbitNotifier(url, exchange string) (*RabbitNotifier, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("url")
	}
	if exchange == "" {
		return nil, errs.NewValueIsRequiredError("exchange")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &RabbitNotifier{conn: conn, ch: ch, exchange: exchange}, nil
}

func (n *RabbitNotifier) Notify(ctx context.Context, title string, body string, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	payload, err := json.Marshal(pushMessage{Title: title, Body: body, Tokens: tokens})
	if err != nil {
		return err
	}
	return n.ch.PublishWithContext(ctx, n.exchange, routingKeyCourierPush, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        payload,
	})
}

func (n *RabbitNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

// LogNotifier is the fallback used when no broker is configured. It records
// the notification instead of delivering it.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

func (n *LogNotifier) Notify(_ context.Context, title string, body string, tokens []string) error {
	n.logger.Info("notification suppressed, no broker configured",
		"title", title, "body", body, "tokens", len(tokens))
	return nil
}
