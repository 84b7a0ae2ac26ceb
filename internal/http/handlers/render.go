package handlers

import (
	"github.com/gofiber/fiber/v2"

	"phonedash/internal/forms"
	"phonedash/internal/money"
)

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// token put into Locals by the csrf middleware, if it ran
	if tok, ok := c.Locals(csrfContextKey).(string); ok && tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// templateFuncs are available in every view.
var templateFuncs = map[string]any{
	"clp":   clp,
	"fecha": forms.DisplayDate,
}

func clp(v any) string {
	switch n := v.(type) {
	case money.Amount:
		return n.String()
	case int64:
		return money.FormatCLP(n)
	case int:
		return money.FormatCLP(int64(n))
	default:
		return ""
	}
}
