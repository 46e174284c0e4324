package controller

import (
	"github.com/gofiber/fiber/v2"

	"guruvela-be/internal/dto"
	"guruvela-be/internal/pkg/serverutils"
	"guruvela-be/internal/service"
)

type IPredictorController interface {
	RegisterRoutes(r fiber.Router)
	Josaa(ctx *fiber.Ctx) error
	Csab(ctx *fiber.Ctx) error
}

type predictorController struct {
	service service.IPredictorService
}

func NewPredictorController(service service.IPredictorService) IPredictorController {
	return &predictorController{service: service}
}

func (c *predictorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/predictor/v1")
	h.Post("josaa", c.Josaa)
	h.Post("csab", c.Csab)
}

func (c *predictorController) Josaa(ctx *fiber.Ctx) error {
	var req dto.JosaaPredictRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.PredictJosaa(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success predict JoSAA colleges", res))
}

func (c *predictorController) Csab(ctx *fiber.Ctx) error {
	var req dto.CsabPredictRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.PredictCsab(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success predict CSAB colleges", res))
}
