package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

type Producer struct {
	l                  *slog.Logger
	w                  *kafka.Writer
	statusUpdatedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                  l,
		w:                  w,
		statusUpdatedTopic: topic,
	}
}

type SendStatusChangedEvent struct {
	ClientID  uuid.UUID `json:"client_id"`
	Dimension string    `json:"dimension"`
	Gateway   string    `json:"gateway,omitempty"`
	Status    string    `json:"status"`
	ChangedBy uuid.UUID `json:"changed_by"`
}

func (p *Producer) SendStatusChanged(ctx context.Context, clientID uuid.UUID, dimension, gateway, status string, changedBy uuid.UUID) {
	event := SendStatusChangedEvent{
		ClientID:  clientID,
		Dimension: dimension,
		Gateway:   gateway,
		Status:    status,
		ChangedBy: changedBy,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(clientID.String()),
		Value: b,
		Topic: p.statusUpdatedTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
