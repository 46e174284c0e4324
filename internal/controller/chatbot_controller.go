package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"guruvela-be/internal/dto"
	"guruvela-be/internal/pkg/serverutils"
	"guruvela-be/internal/service"
	internalWS "guruvela-be/internal/websocket"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	Socket(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
	hub     *internalWS.Hub
}

func NewChatbotController(service service.IChatbotService, hub *internalWS.Hub) IChatbotController {
	return &chatbotController{service: service, hub: hub}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot/v1")
	h.Post("session", c.CreateSession)
	h.Delete("session/:id", c.DeleteSession)
	h.Post("chat", c.SendChat)
	h.Get("ws", c.Socket)
}

func (c *chatbotController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}
	if req.Language == "" {
		req.Language = ctx.Query("lang")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendChat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatbotController) DeleteSession(ctx *fiber.Ctx) error {
	if err := c.service.DeleteSession(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

// Socket upgrades to a websocket carrying one conversation.
func (c *chatbotController) Socket(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}
	lang := ctx.Query("lang")
	return websocket.New(func(conn *websocket.Conn) {
		internalWS.ServeChat(c.hub, c.service, conn, lang)
	})(ctx)
}
