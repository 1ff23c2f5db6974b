package controller

import (
	"mindshift-be/internal/dto"
	"mindshift-be/internal/pkg/serverutils"
	"mindshift-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDetectionController interface {
	RegisterRoutes(r fiber.Router)
	Detect(ctx *fiber.Ctx) error
	Current(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type detectionController struct {
	detectionService service.IDetectionService
}

func NewDetectionController(detectionService service.IDetectionService) IDetectionController {
	return &detectionController{
		detectionService: detectionService,
	}
}

func (c *detectionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/archetype/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("detect", c.Detect)
	h.Get("current", c.Current)
	h.Get("history", c.History)
	h.Get("stats", c.Stats)
}

func (c *detectionController) Detect(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	// An empty or partial body is fine, the engine fills defaults.
	var req dto.DetectRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.detectionService.Detect(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success detect archetype", res))
}

func (c *detectionController) Current(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.detectionService.Current(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "No detection yet")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get current archetype", res))
}

func (c *detectionController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	query := dto.HistoryQuery{
		Archetype: ctx.Query("archetype"),
		Limit:     ctx.QueryInt("limit"),
		Offset:    ctx.QueryInt("offset"),
	}

	res, err := c.detectionService.History(ctx.Context(), userId, &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get detection history", res))
}

func (c *detectionController) Stats(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.detectionService.Stats(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get archetype stats", res))
}
