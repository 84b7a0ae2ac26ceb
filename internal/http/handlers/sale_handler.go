package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"phonedash/internal/domain"
	applog "phonedash/internal/log"
	"phonedash/internal/services"
	"phonedash/internal/validate"
)

const (
	msgSaleInvalid    = "Datos de venta inválidos"
	msgSaleSaveFailed = "Error al guardar la venta"
	msgSaleListFailed = "Error al obtener las ventas"
)

type SaleHandler struct {
	Sales *services.SaleService
}

// Create handles POST /api/ventas.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in domain.SaleInput
	if err := decodeStrict(c.Body(), &in); err != nil {
		applog.Warn(c, "sale.create.bad_body", err, nil)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   msgSaleInvalid,
			"details": validate.Errors{{Field: "body", Message: "JSON inválido"}},
		})
	}

	sale, err := h.Sales.Create(c.UserContext(), in)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.Status(fiber.StatusBadRequest)
			applog.Warn(c, "sale.create.invalid", err, nil)
			return c.JSON(fiber.Map{"error": msgSaleInvalid, "details": verr.Fields})
		}
		c.Status(fiber.StatusInternalServerError)
		applog.Error(c, "sale.create.fail", err, nil)
		return c.JSON(fiber.Map{"error": msgSaleSaveFailed})
	}

	applog.Audit(c, "sale.create", map[string]any{"id": sale.ID, "fecha": sale.Fecha, "modelo": sale.Modelo})
	return c.JSON(fiber.Map{"success": true, "id": sale.ID})
}

// List handles GET /api/ventas.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.Sales.List(c.UserContext())
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		applog.Error(c, "sale.list.fail", err, nil)
		return c.JSON(fiber.Map{"error": msgSaleListFailed})
	}
	return c.JSON(sales)
}

// decodeStrict decodes exactly one JSON object and rejects unknown keys.
func decodeStrict(body []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}
