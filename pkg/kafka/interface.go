package kafka

import "context"

// IProducer publishes messages to a fixed topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	Close() error
}

// IConsumer consumes messages from a consumer group until the context is
// cancelled.
type IConsumer interface {
	Consume(ctx context.Context) error
	Close() error
}

// NewProducer creates a new synchronous Kafka producer.
func NewProducer(cfg Config) (IProducer, error) {
	return newProducer(cfg)
}

// NewConsumer creates a new consumer group member dispatching to handler.
func NewConsumer(cfg ConsumerConfig, handler MessageHandler) (IConsumer, error) {
	return newConsumer(cfg, handler)
}
