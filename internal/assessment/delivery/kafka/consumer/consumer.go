package consumer

import (
	"context"
	"encoding/json"

	kafkaDelivery "vigil-srv/internal/assessment/delivery/kafka"

	"github.com/IBM/sarama"
)

// ConsumeScanSubmitted starts consuming scan submissions
func (c *Consumer) ConsumeScanSubmitted(ctx context.Context) error {
	topic := c.kafkaConfig.Topic
	if topic == "" {
		topic = kafkaDelivery.TopicScanSubmitted
	}
	groupID := c.kafkaConfig.GroupID
	if groupID == "" {
		groupID = kafkaDelivery.ConsumerGroupScanWorkers
	}

	group, err := c.createConsumerGroup(groupID)
	if err != nil {
		return err
	}
	c.scanGroup = group

	handler := &scanSubmittedHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", topic)

	return nil
}

// handleScanMessage decodes and processes one scan submission. Malformed
// payloads are logged and skipped so the partition keeps moving.
func (c *Consumer) handleScanMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var m kafkaDelivery.ScanSubmittedMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		c.l.Errorf(ctx, "assessment.delivery.kafka.consumer.handleScanMessage: invalid payload at offset %d: %v", msg.Offset, err)
		return nil
	}
	if m.ScanID == "" {
		c.l.Errorf(ctx, "assessment.delivery.kafka.consumer.handleScanMessage: missing scan_id at offset %d", msg.Offset)
		return nil
	}

	if err := c.uc.ProcessScan(ctx, m.ScanID); err != nil {
		return err
	}
	return nil
}
