package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// errNoSource mirrors the guard the dashboard shows when the ventas source
// was never configured.
const errNoSource = "Configuración de la fuente de ventas no encontrada"

// HandleReporteDia returns the totals of the current calendar day.
func HandleReporteDia(c *fiber.Ctx) error {
	if reportService == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": errNoSource})
	}

	reporte, err := reportService.ReporteDia(c.Context(), time.Now())
	if err != nil {
		log.Printf("Error en reporte-dia: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "data": reporte})
}

// HandleReporteSemanal returns the report of the current Monday-Sunday week.
func HandleReporteSemanal(c *fiber.Ctx) error {
	if reportService == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": errNoSource})
	}

	reporte, err := reportService.ReporteSemanal(c.Context(), time.Now())
	if err != nil {
		log.Printf("Error en reporte-semanal: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "data": reporte})
}

// HandleMetricasMensuales returns the report of the current month.
func HandleMetricasMensuales(c *fiber.Ctx) error {
	if reportService == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": errNoSource})
	}

	metricas, err := reportService.MetricasMensuales(c.Context(), time.Now())
	if err != nil {
		log.Printf("Error en metricas-mensuales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "data": metricas})
}

// HandleAnalisisHorarios returns the hour-of-day analysis of the current
// month.
func HandleAnalisisHorarios(c *fiber.Ctx) error {
	if reportService == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": errNoSource})
	}

	analisis, err := reportService.AnalisisHorarios(c.Context(), time.Now())
	if err != nil {
		log.Printf("Error en analisis-horarios: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "data": analisis})
}
