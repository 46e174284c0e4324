package events

import "time"

const (
	TypeTurnCompleted = "chat.turn_completed"
	TypeContentGap    = "content.gap"
)

// Event is anything published on the cross-service bus.
type Event interface {
	// EventType doubles as the subject suffix, e.g. "chat.turn_completed".
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// TurnCompleted summarizes one answered chat turn. Message text is not
// included.
func TurnCompleted(sessionID, flow, outcome, language string, fallback bool, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeTurnCompleted,
		Data: map[string]interface{}{
			"session_id":        sessionID,
			"flow":              flow,
			"outcome":           outcome,
			"language":          language,
			"fallback_language": fallback,
			"occurred_at":       at.UTC().Format(time.RFC3339),
		},
		OccurredAt: at,
	}
}
