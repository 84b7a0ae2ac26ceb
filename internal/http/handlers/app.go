package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"phonedash/internal/config"
	applog "phonedash/internal/log"
	"phonedash/web"
)

const csrfContextKey = "csrf"

const msgInternal = "Ocurrió un error. Intenta nuevamente."

// NewApp builds the Fiber application with every route and middleware mounted.
func NewApp(d *Deps, cfg config.Config) *fiber.App {
	engine := html.NewFileSystem(web.Templates(), ".html")
	engine.AddFuncMap(templateFuncs)

	app := fiber.New(fiber.Config{
		Views:        engine,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: ErrorHandler,
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	rate := cfg.RateLimitPerMin
	if rate < 1 {
		rate = 60
	}
	writeLimiter := limiter.New(limiter.Config{
		Max:        rate,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			c.Status(fiber.StatusTooManyRequests)
			applog.Warn(c, "rate.write.hit", nil, nil)
			return c.JSON(fiber.Map{"error": "Demasiadas solicitudes, intenta más tarde"})
		},
	})
	formCSRF := csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		ContextKey:     csrfContextKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Status(fiber.StatusForbidden)
			applog.Warn(c, "csrf.fail", err, nil)
			return c.Render("notfound", fiber.Map{"Message": "La verificación de seguridad falló. Recarga la página e intenta de nuevo."})
		},
	})

	// ---------- JSON API ----------
	api := app.Group("/api")
	api.Get("/config/accesorio", d.ConfigHandler.Accessory)
	api.Get("/config/iphone", d.ConfigHandler.IPhone)
	api.Post("/ventas", writeLimiter, d.SaleHandler.Create)
	api.Get("/ventas", d.SaleHandler.List)

	// ---------- Dashboard ----------
	app.Get("/", d.DashboardHandler.Home)
	app.Get("/ventas", formCSRF, d.DashboardHandler.Ventas)
	app.Get("/ventas/nueva", formCSRF, d.DashboardHandler.NewForm)
	app.Post("/ventas/nueva", writeLimiter, formCSRF, d.DashboardHandler.Create)

	// ---------- Ops ----------
	app.Get("/healthz", d.HealthHandler.Check)
	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	// 404
	app.Use(func(c *fiber.Ctx) error {
		c.Status(fiber.StatusNotFound)
		if isAPI(c) {
			return c.JSON(fiber.Map{"error": "Recurso no encontrado"})
		}
		return c.Render("notfound", fiber.Map{"Message": "Página no encontrada"})
	})

	return app
}

// ErrorHandler answers errors that handlers return unhandled. Server errors are
// logged and replaced with a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := msgInternal
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code < fiber.StatusInternalServerError {
			msg = fe.Message
		}
	}
	c.Status(code)
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}
	if isAPI(c) {
		return c.JSON(fiber.Map{"error": msg})
	}
	if rerr := c.Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.SendString(msg)
	}
	return nil
}

func isAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}
