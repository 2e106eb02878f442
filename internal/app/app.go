package app

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/redis/go-redis/v9"

	"dataanalyzer/internal/fonts"
	"dataanalyzer/internal/handlers"
	"dataanalyzer/internal/layout"
	u "dataanalyzer/internal/utils"
	"dataanalyzer/internal/views"
)

// SetupApp creates and configures a new Fiber app instance
func SetupApp(cfg u.Config, redis *redis.Client, face *fonts.Face) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:               cfg.Server.Prefork,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			u.Warn("Request failed", "path", c.Path(), "status", code, "message", msg)

			// Browsers get the error page through the layout shell,
			// everything else gets the JSON envelope.
			if acceptsHTML(c) {
				doc, renderErr := layout.Render(views.Error(code, msg))
				if renderErr == nil {
					c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
					return c.Status(code).SendString(doc)
				}
			}

			return c.Status(code).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    code,
					"message": msg,
				},
			})
		},
	})

	RegisterMiddleware(app, cfg)
	RegisterRoutes(app, cfg, redis, face)

	// Unmatched routes fall through to the error handler as 404s.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	return app
}

// RegisterRoutes mounts all route handlers to the app
func RegisterRoutes(app *fiber.App, cfg u.Config, redis *redis.Client, face *fonts.Face) {
	// One shared service instance so every route shares the same page cache.
	svc := handlers.NewPageService(cfg, redis, face)

	app.Get("/", svc.HandleHome)

	assets := app.Group("/assets")
	assets.Get("/fonts.css", svc.HandleFontCSS)
	assets.Get("/fonts/:file", svc.HandleFontFile)

	app.Get("/ops/monitor", monitor.New())
}

func acceptsHTML(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), "text/html")
}
