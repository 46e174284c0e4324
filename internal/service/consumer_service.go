package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"guruvela-be/internal/dto"
	"guruvela-be/internal/pkg/logger"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// contentGapConsumer drains knowledge-base misses from the in-process bus
// and logs them for content authors.
type contentGapConsumer struct {
	subscriber message.Subscriber
	topicName  string
	log        logger.ILogger
}

func NewContentGapConsumer(subscriber message.Subscriber, topicName string, log logger.ILogger) IConsumerService {
	return &contentGapConsumer{
		subscriber: subscriber,
		topicName:  topicName,
		log:        log,
	}
}

func (cs *contentGapConsumer) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *contentGapConsumer) processMessage(msg *message.Message) {
	var payload dto.ContentGapMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("content", "invalid content gap message", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		// Malformed messages would only be redelivered forever.
		msg.Ack()
		return
	}

	cs.log.Info("content", "unanswered question", map[string]interface{}{
		"session_id": payload.SessionId,
		"language":   payload.Language,
		"question":   payload.Question,
	})
	msg.Ack()
}
