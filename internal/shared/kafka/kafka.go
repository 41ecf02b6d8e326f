package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

type Writer = kafka.Writer

// NewWriter cria o writer do tópico; brokers vazio significa publisher desligado.
// A publicação roda no caminho da requisição, então o lote não espera encher.
func NewWriter(brokers string, topic string) *kafka.Writer {
	if strings.TrimSpace(brokers) == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}
