package server

import (
	"net/http"

	"nutrigenie/internal/utility"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"https://*", "http://*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:       300,
	}))

	e.Use(LoggerMiddleware)

	e.GET("/health", s.healthHandler)

	api := e.Group("/api/v1")

	// Food catalog
	api.GET("/foods", s.ListFoodsHandler)
	api.GET("/foods/search", s.SearchFoodsHandler)
	api.GET("/foods/:food_id", s.GetFoodHandler)
	api.GET("/foods/:food_id/similar", s.SimilarFoodsHandler)

	// Engine operations
	api.POST("/plan", s.GeneratePlanHandler)
	api.POST("/compare", s.CompareFoodsHandler)
	api.POST("/intake/analyze", s.AnalyzeIntakeHandler)
	api.POST("/recommendations", s.SmartRecommendationsHandler)

	return e
}

// LoggerMiddleware attaches a request-scoped logger carrying the request id.
func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().
			Str("request_id", requestID).
			Str("client_ip", utility.GetRealIP(c)).
			Logger()

		c.Set("logger", &logger)

		return next(c)
	}
}
