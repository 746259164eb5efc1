package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Brandongr90/la-gruta-dashboard/handlers"
	"github.com/Brandongr90/la-gruta-dashboard/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/login", handlers.HandleLogin)

	// Report routes require a valid session token.
	api.Get("/reporte-dia", middleware.JWTMiddleware, handlers.HandleReporteDia)
	api.Get("/reporte-semanal", middleware.JWTMiddleware, handlers.HandleReporteSemanal)
	api.Get("/metricas-mensuales", middleware.JWTMiddleware, handlers.HandleMetricasMensuales)
	api.Get("/analisis-horarios", middleware.JWTMiddleware, handlers.HandleAnalisisHorarios)
}
