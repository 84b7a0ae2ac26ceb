package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	applog "phonedash/internal/log"
)

type HealthHandler struct {
	DB *sqlx.DB
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.DB.PingContext(c.UserContext()); err != nil {
		c.Status(fiber.StatusServiceUnavailable)
		applog.Error(c, "health.db.fail", err, nil)
		return c.JSON(fiber.Map{"ok": false})
	}
	return c.JSON(fiber.Map{"ok": true})
}
