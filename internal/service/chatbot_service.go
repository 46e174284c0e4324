package service

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"guruvela-be/internal/dto"
	"guruvela-be/internal/repository/memory"
	"guruvela-be/pkg/dialogue"
)

type IChatbotService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, sessionId string) error

	// OpenSession and Turn drive a connection-scoped conversation.
	OpenSession(language string) (*dialogue.Session, dialogue.TurnResponse)
	Turn(ctx context.Context, sess *dialogue.Session, turn dialogue.Turn) dialogue.TurnResponse
	CloseSession(sess *dialogue.Session)
}

type chatbotService struct {
	orchestrator *dialogue.Orchestrator
	sessionRepo  *memory.SessionRepository
}

func NewChatbotService(orchestrator *dialogue.Orchestrator, sessionRepo *memory.SessionRepository) IChatbotService {
	return &chatbotService{
		orchestrator: orchestrator,
		sessionRepo:  sessionRepo,
	}
}

func (s *chatbotService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	sess, greeting := s.OpenSession(request.Language)
	return &dto.CreateSessionResponse{
		SessionId:   sess.ID,
		Language:    sess.Language,
		Greeting:    greeting.Text,
		Suggestions: greeting.Suggestions,
	}, nil
}

func (s *chatbotService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sess, _ := s.sessionRepo.GetOrCreate(request.SessionId, request.Language)

	reply := s.Turn(ctx, sess, dialogue.Turn{
		Text:     request.Message,
		Language: request.Language,
		TopicID:  request.TopicId,
	})

	return &dto.SendChatResponse{
		SessionId: sess.ID,
		Reply:     reply,
	}, nil
}

func (s *chatbotService) DeleteSession(ctx context.Context, sessionId string) error {
	if _, ok := s.sessionRepo.Get(sessionId); !ok {
		return fiber.NewError(fiber.StatusNotFound, "session not found")
	}
	s.sessionRepo.Delete(sessionId)
	return nil
}

func (s *chatbotService) OpenSession(language string) (*dialogue.Session, dialogue.TurnResponse) {
	sess := s.sessionRepo.Create(language)
	return sess, s.orchestrator.Greeting(sess)
}

// Turn handles one message. Turns on the same session never interleave.
func (s *chatbotService) Turn(ctx context.Context, sess *dialogue.Session, turn dialogue.Turn) dialogue.TurnResponse {
	sess.Lock()
	defer sess.Unlock()
	return s.orchestrator.HandleTurn(ctx, sess, turn)
}

func (s *chatbotService) CloseSession(sess *dialogue.Session) {
	s.sessionRepo.Delete(sess.ID)
}
