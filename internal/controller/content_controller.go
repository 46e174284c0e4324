package controller

import (
	"github.com/gofiber/fiber/v2"

	"guruvela-be/internal/pkg/serverutils"
	"guruvela-be/internal/service"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	ShowPage(ctx *fiber.Ctx) error
	ListFAQs(ctx *fiber.Ctx) error
}

type contentController struct {
	service service.IContentService
}

func NewContentController(service service.IContentService) IContentController {
	return &contentController{service: service}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content/v1")
	h.Get("pages/:slug", c.ShowPage)
	h.Get("faqs", c.ListFAQs)
}

func (c *contentController) ShowPage(ctx *fiber.Ctx) error {
	res, err := c.service.GetPage(ctx.Context(), ctx.Params("slug"), ctx.Query("lang"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show page", res))
}

func (c *contentController) ListFAQs(ctx *fiber.Ctx) error {
	res, err := c.service.ListFAQs(ctx.Context(), ctx.Query("lang"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get FAQ list", res))
}
