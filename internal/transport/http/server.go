package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

// requestValidator adapts go-playground/validator to echo's Validator
// interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Server wraps the echo instance with the catalog routes registered.
type Server struct {
	echo *echo.Echo
	addr string
}

// NewServer creates the HTTP server and registers every route.
func NewServer(addr string, handler *Handler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.Recover())
	e.Use(requestLogger())

	registerRoutes(e, handler)

	return &Server{echo: e, addr: addr}
}

// Start blocks serving requests until Shutdown or failure.
func (s *Server) Start() error {
	if err := s.echo.Start(s.addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func registerRoutes(e *echo.Echo, h *Handler) {
	api := e.Group("/api/v1")

	api.POST("/entries", h.CreateEntry)
	api.GET("/entries", h.ListEntries)
	api.GET("/entries/:id", h.GetEntry)
	api.PATCH("/entries/:id", h.PatchEntry)
	api.DELETE("/entries/:id", h.DeleteEntry)
	api.POST("/entries/:id/variants", h.AddVariant)

	api.GET("/variants", h.ListVariants)
	api.GET("/variants/:variantId", h.GetByVariant)
	api.PATCH("/variants/:variantId", h.PatchVariant)
	api.DELETE("/variants/:variantId", h.DeleteVariant)
	api.PUT("/variants/:variantId/sections/:section", h.PatchSection)
	api.PUT("/variants/:variantId/schemes", h.UpdateFlags)
	api.POST("/variants/:variantId/colors", h.AddColor)
	api.PATCH("/variants/:variantId/colors/:colorId", h.PatchColor)

	api.GET("/schemes/:scheme", h.ListByScheme)

	api.GET("/categories", h.ListCategories)
	api.POST("/categories", h.CreateCategory)
	api.POST("/categories/refresh-counts", h.RefreshCategoryCounts)
	api.GET("/categories/slug/:slug", h.GetCategoryBySlug)
	api.GET("/categories/slug/:slug/products", h.ProductsByCategory)
	api.GET("/categories/:id", h.GetCategory)
	api.PATCH("/categories/:id", h.UpdateCategory)
	api.DELETE("/categories/:id", h.DeleteCategory)
	api.POST("/categories/:id/refresh-count", h.RefreshCategoryCount)

	api.POST("/contacts", h.SubmitContact)

	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.WithFields(log.Fields{
				"method":  c.Request().Method,
				"path":    c.Request().URL.Path,
				"status":  c.Response().Status,
				"elapsed": time.Since(start).String(),
			}).Info("request")
			return err
		}
	}
}
