package handler

import (
	"github.com/gofiber/fiber/v2"
)

// Version is reported by /health
const Version = "0.1.0"

type HealthHandler struct {
	locator string
}

func NewHealthHandler(locatorName string) *HealthHandler {
	return &HealthHandler{locator: locatorName}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Locator string `json:"locator,omitempty"`
}

// Live GET / - plain text liveness
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.SendString("Skin Tone API is live!")
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// Ready reports which locator is serving requests
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:  "ready",
		Locator: h.locator,
	})
}
