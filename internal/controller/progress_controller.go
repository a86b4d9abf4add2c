package controller

import (
	"course-portal-be/internal/dto"
	"course-portal-be/internal/pkg/apperr"
	"course-portal-be/internal/pkg/serverutils"
	"course-portal-be/internal/service"
	internalWS "course-portal-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IProgressController interface {
	RegisterRoutes(r fiber.Router)
	ResolveSession(ctx *fiber.Ctx) error
	RecordStep(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type progressController struct {
	service   service.IProgressService
	hub       *internalWS.Hub
	adminGate fiber.Handler
}

func NewProgressController(service service.IProgressService, hub *internalWS.Hub, adminGate fiber.Handler) IProgressController {
	return &progressController{service: service, hub: hub, adminGate: adminGate}
}

func (c *progressController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/progress")
	h.Post("/session", c.ResolveSession)
	h.Post("/step", c.RecordStep)
	h.Post("/reset", c.Reset)
	h.Get("/stats", c.adminGate, c.Stats)

	h.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	h.Get("/ws", websocket.New(c.serveSocket))
}

func (c *progressController) ResolveSession(ctx *fiber.Ctx) error {
	var req dto.ResolveSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	res, err := c.service.ResolveSession(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *progressController) RecordStep(ctx *fiber.Ctx) error {
	var req dto.RecordStepRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	res, err := c.service.RecordStep(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *progressController) Reset(ctx *fiber.Ctx) error {
	var req dto.ResetProgressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return err
	}

	if err := c.service.Reset(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (c *progressController) Stats(ctx *fiber.Ctx) error {
	res, err := c.service.Stats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// serveSocket runs inside the upgraded connection goroutine. Presence is
// keyed by session, so a connection without a session id is closed right
// away instead of being counted.
func (c *progressController) serveSocket(conn *websocket.Conn) {
	sessionId := conn.Query("session_id")
	deviceFingerprint := conn.Query("device_fingerprint")
	if sessionId == "" {
		conn.Close()
		return
	}
	internalWS.ServeWs(c.hub, conn, sessionId, deviceFingerprint)
}
