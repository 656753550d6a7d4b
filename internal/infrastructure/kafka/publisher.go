package kafka

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-brokerage-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher is the broker-backed implementation of
// domain.PublisherPort. Event shaping lives in NotificationEventPublisher.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) Publish(msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
		})
	}
	return k.writer.WriteMessages(context.Background(), km...)
}
