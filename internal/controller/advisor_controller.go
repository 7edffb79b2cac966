package controller

import (
	"edutrack-advisor-be/internal/dto"
	"edutrack-advisor-be/internal/pkg/serverutils"
	"edutrack-advisor-be/internal/service"
	ws "edutrack-advisor-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type IAdvisorController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type advisorController struct {
	advisorService service.IAdvisorService
	hub            *ws.Hub
}

func NewAdvisorController(advisorService service.IAdvisorService, hub *ws.Hub) IAdvisorController {
	return &advisorController{
		advisorService: advisorService,
		hub:            hub,
	}
}

func (c *advisorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/advisor/v1")
	h.Post("ask", c.Ask)

	// Live flow stream for monitoring dashboards
	h.Use("flow/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	h.Get("flow/ws", websocket.New(func(conn *websocket.Conn) {
		ws.ServeWs(c.hub, conn)
	}))

	// History requires staff credentials
	h.Get("history", serverutils.JwtMiddleware, c.History)
	h.Get("history/:id", serverutils.JwtMiddleware, c.Show)
}

func (c *advisorController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.advisorService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Advisory response", res))
}

func (c *advisorController) History(ctx *fiber.Ctx) error {
	var req dto.HistoryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query parameters"))
	}

	res, err := c.advisorService.History(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Interaction history", res))
}

func (c *advisorController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid interaction ID"))
	}

	res, err := c.advisorService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Interaction not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Interaction details", res))
}
