package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"phonedash/internal/domain"
	"phonedash/internal/forms"
	applog "phonedash/internal/log"
	"phonedash/internal/money"
	"phonedash/internal/services"
	"phonedash/internal/validate"
)

type DashboardHandler struct {
	Sales *services.SaleService
}

func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	return c.Redirect("/ventas", fiber.StatusFound)
}

// Ventas renders the sales table with a totals row.
func (h *DashboardHandler) Ventas(c *fiber.Ctx) error {
	sales, err := h.Sales.List(c.UserContext())
	if err != nil {
		return err
	}
	sum, err := h.Sales.Summary(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, "ventas", fiber.Map{"Sales": sales, "Summary": sum})
}

func (h *DashboardHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "venta_nueva", fiber.Map{"Form": newSaleForm().values()})
}

// Create handles the HTML form. Inputs go through the same transitions the
// browser applies while typing before the sale is validated and stored.
func (h *DashboardHandler) Create(c *fiber.Ctx) error {
	f := newSaleForm()
	for name, field := range f.fields {
		field.HandleChange(c.FormValue(name))
	}

	in, errs := f.input()
	if len(errs) > 0 {
		return h.rejectForm(c, f, errs)
	}

	sale, err := h.Sales.Create(c.UserContext(), in)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return h.rejectForm(c, f, verr.Fields)
		}
		return err
	}
	applog.Audit(c, "sale.create.form", map[string]any{"id": sale.ID, "fecha": sale.Fecha, "modelo": sale.Modelo})
	return c.Redirect("/ventas", fiber.StatusSeeOther)
}

func (h *DashboardHandler) rejectForm(c *fiber.Ctx, f *saleForm, errs validate.Errors) error {
	c.Status(fiber.StatusBadRequest)
	applog.Warn(c, "sale.create.form.invalid", errs, nil)
	return render(c, "venta_nueva", fiber.Map{"Form": f.values(), "Errors": errs})
}

// saleForm holds one field per form input, keyed by input name.
type saleForm struct {
	fields map[string]*forms.Field
}

func newSaleForm() *saleForm {
	return &saleForm{fields: map[string]*forms.Field{
		"fecha":          forms.NewField("", forms.DateMask),
		"tipo":           forms.NewField("", strings.TrimSpace),
		"modelo":         forms.NewField("", forms.UpperTrim),
		"serie":          forms.NewField("", forms.UpperTrim),
		"gama":           forms.NewField("", forms.UpperTrim),
		"configuracion":  forms.NewField("", forms.UpperTrim),
		"imei":           forms.NewField("", money.Digits),
		"precio":         money.NewInput(""),
		"costo":          money.NewInput(""),
		"medio_pago":     forms.NewField("", strings.TrimSpace),
		"cliente_rut":    forms.NewField("", forms.UpperTrim),
		"cliente_nombre": forms.NewField("", forms.UpperTrim),
		"notas":          forms.NewField("", strings.TrimSpace),
	}}
}

func (f *saleForm) value(name string) string { return f.fields[name].Value() }

func (f *saleForm) values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for name, field := range f.fields {
		out[name] = field.Value()
	}
	return out
}

// input converts the display values into a SaleInput. Dates and amounts that
// cannot be read are reported as field errors.
func (f *saleForm) input() (domain.SaleInput, validate.Errors) {
	var errs validate.Errors
	in := domain.SaleInput{
		Tipo:          f.value("tipo"),
		Modelo:        f.value("modelo"),
		Serie:         f.value("serie"),
		Gama:          f.value("gama"),
		Configuracion: f.value("configuracion"),
		IMEI:          f.value("imei"),
		MedioPago:     f.value("medio_pago"),
		ClienteRUT:    f.value("cliente_rut"),
		ClienteNombre: f.value("cliente_nombre"),
		Notas:         f.value("notas"),
	}
	if v := f.value("fecha"); v != "" {
		iso, err := forms.ParseDate(v)
		if err != nil {
			errs = append(errs, validate.FieldError{Field: "fecha", Message: "fecha inválida, formato DD-MM-AAAA"})
		}
		in.Fecha = iso
	}
	amounts := []struct {
		name string
		dst  *money.Amount
	}{{"precio", &in.Precio}, {"costo", &in.Costo}}
	for _, a := range amounts {
		v := f.value(a.name)
		if v == "" {
			continue
		}
		n, err := money.Parse(v)
		if err != nil {
			errs = append(errs, validate.FieldError{Field: a.name, Message: "monto inválido"})
			continue
		}
		*a.dst = money.Amount(n)
	}
	return in, errs
}
