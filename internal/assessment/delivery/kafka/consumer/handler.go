package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type scanSubmittedHandler struct {
	consumer *Consumer
}

func (h *scanSubmittedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *scanSubmittedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *scanSubmittedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleScanMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "assessment.delivery.kafka.consumer.ConsumeClaim: failed to process scan message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
