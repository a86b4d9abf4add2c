package controller

import (
	"strings"

	"course-portal-be/internal/dto"
	"course-portal-be/internal/pkg/apperr"
	"course-portal-be/internal/pkg/serverutils"
	"course-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISurveyController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	Results(ctx *fiber.Ctx) error
}

type surveyController struct {
	service   service.ISurveyService
	adminGate fiber.Handler
}

func NewSurveyController(service service.ISurveyService, adminGate fiber.Handler) ISurveyController {
	return &surveyController{service: service, adminGate: adminGate}
}

func (c *surveyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/surveys")
	h.Post("/submit", c.Submit)
	h.Get("/results", c.adminGate, c.Results)
}

func (c *surveyController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitSurveyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.Context(), &req, clientIP(ctx))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

// clientIP prefers the first X-Forwarded-For hop; deployments sit behind a
// reverse proxy, so the socket address is usually the proxy itself.
func clientIP(ctx *fiber.Ctx) string {
	if fwd := ctx.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	return ctx.IP()
}

func (c *surveyController) Results(ctx *fiber.Ctx) error {
	res, err := c.service.Results(ctx.Context(), ctx.Query("surveyId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
