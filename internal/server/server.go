package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khairibzd/portfolio-chat/config"
	"github.com/khairibzd/portfolio-chat/internal/knowledge"
	"github.com/khairibzd/portfolio-chat/internal/portfolio"
	"github.com/khairibzd/portfolio-chat/internal/recruiter"
	"github.com/khairibzd/portfolio-chat/provider"
)

// Run starts the HTTP API server and blocks until it stops.
func Run(cfg *config.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	// Unified HTTP error handler with structured JSON and logging
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: false,
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	if cfg.Telemetry.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// Shared, immutable chat dependencies. The agent itself is built
	// per request so a missing credential surfaces as a request-time
	// configuration error instead of a startup crash.
	store := knowledge.NewDefaultStore()
	projects := portfolio.NewDefaultCatalog()
	agentLogger := log.New(log.Writer(), "[AGENT] ", log.LstdFlags)

	h := &ChatHandler{
		NewAgent: func() (Agent, error) {
			llm, err := provider.NewProvider(provider.OpenRouter, cfg.OpenRouter)
			if err != nil {
				return nil, err
			}
			return recruiter.New(store, projects, llm, agentLogger), nil
		},
	}
	h.Register(e)

	return e.Start(cfg.Server.Address)
}
