package dto

import (
	"guruvela-be/internal/constant"
	"guruvela-be/pkg/dialogue"
)

type CreateSessionRequest struct {
	Language string `json:"language" validate:"omitempty,max=8"`
}

type CreateSessionResponse struct {
	SessionId   string                `json:"session_id"`
	Language    string                `json:"language"`
	Greeting    string                `json:"greeting"`
	Suggestions []constant.Suggestion `json:"suggestions"`
}

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"omitempty,max=64"`
	Message   string `json:"message" validate:"required_without=TopicId,max=1000"`
	Language  string `json:"language" validate:"omitempty,max=8"`
	TopicId   string `json:"topic_id" validate:"omitempty,max=128"`
}

type SendChatResponse struct {
	SessionId string                `json:"session_id"`
	Reply     dialogue.TurnResponse `json:"reply"`
}

// ChatSocketMessage is one inbound websocket frame.
type ChatSocketMessage struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
	TopicId  string `json:"topic_id,omitempty"`
}

// ChatSocketReply is one outbound websocket frame.
type ChatSocketReply struct {
	Type      string                `json:"type"`
	SessionId string                `json:"session_id"`
	Reply     dialogue.TurnResponse `json:"reply"`
}

// ContentGapMessage travels on the in-process bus when the knowledge base
// had no answer.
type ContentGapMessage struct {
	SessionId string `json:"session_id"`
	Language  string `json:"language"`
	Question  string `json:"question"`
}
