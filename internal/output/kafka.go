package output

import (
	"encoding/json"
	"fmt"

	"github.com/flavyr/flavyr/internal/models"
	"github.com/flavyr/flavyr/internal/output/producers"
)

// MessageProducer publishes raw report bytes to a topic.
type MessageProducer interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// KafkaOutput publishes the full report JSON to a Kafka topic, typically
// alongside a file-based primary sink.
type KafkaOutput struct {
	producer MessageProducer
	topic    string
}

func NewKafkaOutput(cfg *models.Config) (*KafkaOutput, error) {
	producer, err := producers.NewSaramaProducer(cfg)
	if err != nil {
		return nil, err
	}
	return &KafkaOutput{producer: producer, topic: cfg.KafkaTopic}, nil
}

func (k *KafkaOutput) WriteReport(report *models.Report) error {
	msg, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return k.producer.WriteMessage(k.topic, msg)
}

func (k *KafkaOutput) Close() error {
	return k.producer.Close()
}
