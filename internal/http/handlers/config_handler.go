package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "phonedash/internal/log"
	"phonedash/internal/services"
)

const (
	msgConfigNotFound = "Configuración no encontrada"
	msgConfigFailed   = "Error al obtener la configuración"
)

type ConfigHandler struct {
	Configs *services.ConfigService
}

func (h *ConfigHandler) Accessory(c *fiber.Ctx) error {
	doc, err := h.Configs.Accessory(c.UserContext())
	if err != nil {
		return configError(c, "accesorio", err)
	}
	return c.JSON(doc)
}

func (h *ConfigHandler) IPhone(c *fiber.Ctx) error {
	doc, err := h.Configs.IPhone(c.UserContext())
	if err != nil {
		return configError(c, "iphone", err)
	}
	return c.JSON(doc)
}

func configError(c *fiber.Ctx, document string, err error) error {
	if errors.Is(err, services.ErrConfigNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msgConfigNotFound})
	}
	c.Status(fiber.StatusInternalServerError)
	applog.Error(c, "config.get.fail", err, map[string]any{"document": document})
	return c.JSON(fiber.Map{"error": msgConfigFailed})
}
