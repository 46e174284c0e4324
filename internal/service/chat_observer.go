package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"guruvela-be/internal/dto"
	"guruvela-be/internal/metrics"
	"guruvela-be/internal/pkg/logger"
	"guruvela-be/pkg/dialogue"
	"guruvela-be/pkg/events"
)

// EventPublisher is the cross-service bus. *nats.Publisher satisfies it.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type chatObserver struct {
	events   EventPublisher
	bus      message.Publisher
	gapTopic string
	log      logger.ILogger
	now      func() time.Time
}

// NewChatObserver records turn metrics, forwards turn summaries to the
// event bus and puts knowledge-base misses on the in-process bus. Either
// publisher may be nil.
func NewChatObserver(eventPublisher EventPublisher, bus message.Publisher, gapTopic string, log logger.ILogger) dialogue.Observer {
	return &chatObserver{
		events:   eventPublisher,
		bus:      bus,
		gapTopic: gapTopic,
		log:      log,
		now:      time.Now,
	}
}

func (o *chatObserver) TurnCompleted(ctx context.Context, sessionID string, resp dialogue.TurnResponse) {
	metrics.ChatTurns.WithLabelValues(resp.Flow, resp.Outcome).Inc()

	if o.events == nil {
		return
	}
	evt := events.TurnCompleted(sessionID, resp.Flow, resp.Outcome, resp.Language, resp.FallbackLanguage, o.now())
	if err := o.events.Publish(ctx, evt); err != nil {
		o.log.Warn("chatbot", "failed to publish turn event", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionID,
		})
	}
}

func (o *chatObserver) ContentGap(ctx context.Context, sessionID, language, text string) {
	metrics.ContentGaps.WithLabelValues(language).Inc()

	if o.bus == nil || text == "" {
		return
	}
	payload, err := json.Marshal(dto.ContentGapMessage{
		SessionId: sessionID,
		Language:  language,
		Question:  text,
	})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := o.bus.Publish(o.gapTopic, msg); err != nil {
		o.log.Warn("chatbot", "failed to publish content gap", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionID,
		})
	}
}
