package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// defaultProducerRetries is how many times the producer retries a send.
	defaultProducerRetries = 3
	// defaultProducerTimeout bounds a single send.
	defaultProducerTimeout = 10 * time.Second
)

// kafkaVersion pins the protocol version for both producer and consumer.
var kafkaVersion = sarama.V2_6_0_0
