package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// EventHandler receives decoded ticket events. Returning an error stops
// the consume loop.
type EventHandler func(ctx context.Context, event TicketEvent) error

type Consumer struct {
	reader *kafka.Reader
	log    *logrus.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log *logrus.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads ticket events until the context is canceled or the handler
// fails. Payloads that do not decode are logged and skipped, so one bad
// message cannot wedge the topic.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		event, err := decodeTicketEvent(msg.Value)
		if err != nil {
			c.log.WithError(err).WithField("offset", msg.Offset).Warn("skipping malformed ticket event")
			continue
		}

		if err := handler(ctx, event); err != nil {
			return err
		}
	}
}

func decodeTicketEvent(data []byte) (TicketEvent, error) {
	var event TicketEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return TicketEvent{}, fmt.Errorf("failed to decode ticket event: %w", err)
	}
	if event.Reference == "" {
		return TicketEvent{}, fmt.Errorf("ticket event without reference")
	}
	return event, nil
}
