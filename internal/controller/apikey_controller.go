package controller

import (
	"course-portal-be/internal/dto"
	"course-portal-be/internal/pkg/apperr"
	"course-portal-be/internal/pkg/serverutils"
	"course-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IApiKeyController interface {
	RegisterRoutes(r fiber.Router)
	Lookup(ctx *fiber.Ctx) error
}

type apiKeyController struct {
	service service.IApiKeyService
}

func NewApiKeyController(service service.IApiKeyService) IApiKeyController {
	return &apiKeyController{service: service}
}

func (c *apiKeyController) RegisterRoutes(r fiber.Router) {
	r.Post("/api-key", c.Lookup)
}

func (c *apiKeyController) Lookup(ctx *fiber.Ctx) error {
	var req dto.ApiKeyLookupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	res, err := c.service.Lookup(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
