package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/i474232898/vcweather/internal/weather"
)

// Options configures the Fiber app built by NewApp.
type Options struct {
	// AccessLog enables fiber's request logger middleware.
	AccessLog    bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewApp builds the Fiber app serving the document API.
func NewApp(service *weather.Service, opts Options) *fiber.App {
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 10 * time.Second
	}

	app := fiber.New(fiber.Config{
		AppName:               "vcweather",
		DisableStartupMessage: true,
		Immutable:             true,
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		ErrorHandler:          errorHandler,
	})

	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(recover.New())

	RegisterRoutes(app, service)
	return app
}

// errorHandler renders every error as a JSON body.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}
