package controller

import (
	"mindshift-be/internal/dto"
	"mindshift-be/internal/pkg/serverutils"
	"mindshift-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInterventionController interface {
	RegisterRoutes(r fiber.Router)
	Recommendations(ctx *fiber.Ctx) error
	RecordFeedback(ctx *fiber.Ctx) error
}

type interventionController struct {
	interventionService service.IInterventionService
}

func NewInterventionController(interventionService service.IInterventionService) IInterventionController {
	return &interventionController{
		interventionService: interventionService,
	}
}

func (c *interventionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/archetype/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("interventions/:archetype", c.Recommendations)
	h.Post("feedback", c.RecordFeedback)
}

func (c *interventionController) Recommendations(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	catalogKey := ctx.Params("archetype")

	res, err := c.interventionService.Recommendations(ctx.Context(), userId, catalogKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get interventions", res))
}

func (c *interventionController) RecordFeedback(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.RecordFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	if err := c.interventionService.RecordFeedback(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
