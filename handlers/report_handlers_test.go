package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brandongr90/la-gruta-dashboard/auth"
	"github.com/Brandongr90/la-gruta-dashboard/config"
	"github.com/Brandongr90/la-gruta-dashboard/handlers"
	"github.com/Brandongr90/la-gruta-dashboard/models"
	"github.com/Brandongr90/la-gruta-dashboard/reports"
)

type stubSource struct {
	ventas []models.Venta
	err    error
}

func (s *stubSource) FetchVentas(context.Context, reports.TimeWindow) ([]models.Venta, error) {
	return s.ventas, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setup(t *testing.T, source reports.Source) *fiber.App {
	t.Helper()
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	store, err := auth.NewStore([]config.UserCredential{
		{ID: 1, Email: "admin@lagruta.mx", Password: "secreta123", Name: "Administrador"},
	}, "test-secret")
	require.NoError(t, err)

	var service *reports.Service
	if source != nil {
		service = reports.NewService(source, loc)
	}
	handlers.Init(service, store)

	app := fiber.New()
	app.Post("/api/login", handlers.HandleLogin)
	app.Get("/api/reporte-dia", handlers.HandleReporteDia)
	app.Get("/api/reporte-semanal", handlers.HandleReporteSemanal)
	app.Get("/api/metricas-mensuales", handlers.HandleMetricasMensuales)
	app.Get("/api/analisis-horarios", handlers.HandleAnalisisHorarios)
	return app
}

func decode(t *testing.T, body io.Reader) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func TestHandleReporteDia_SuccessEnvelope(t *testing.T) {
	loc, _ := time.LoadLocation("America/Mexico_City")
	app := setup(t, &stubSource{ventas: []models.Venta{
		{FechaHora: time.Now().In(loc), MontoTotal: 80, EntradasTotales: 2, FormaPago: models.PagoEfectivo},
	}})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reporte-dia", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	env := decode(t, resp.Body)
	assert.True(t, env.Success)

	var totales models.Totales
	require.NoError(t, json.Unmarshal(env.Data, &totales))
	assert.Equal(t, 1, totales.TotalVentas)
	assert.Equal(t, 80.0, totales.TotalEfectivo)
}

func TestReportHandlers_FetchFailureEnvelope(t *testing.T) {
	app := setup(t, &stubSource{err: errors.New("error al consultar ventas")})

	for _, ruta := range []string{"/api/reporte-dia", "/api/reporte-semanal", "/api/metricas-mensuales", "/api/analisis-horarios"} {
		resp, err := app.Test(httptest.NewRequest("GET", ruta, nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode, ruta)

		env := decode(t, resp.Body)
		assert.False(t, env.Success, ruta)
		assert.Contains(t, env.Error, "error al consultar ventas", ruta)
	}
}

func TestReportHandlers_MissingSourceConfiguration(t *testing.T) {
	app := setup(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/metricas-mensuales", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	env := decode(t, resp.Body)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "Configuración")
}

func TestHandleAnalisisHorarios_DataShape(t *testing.T) {
	loc, _ := time.LoadLocation("America/Mexico_City")
	now := time.Now().In(loc)
	at := time.Date(now.Year(), now.Month(), 1, 14, 0, 0, 0, loc)

	app := setup(t, &stubSource{ventas: []models.Venta{
		{FechaHora: at, MontoTotal: 100, EntradasTotales: 2, FormaPago: models.PagoEfectivo},
		{FechaHora: at.Add(20 * time.Minute), MontoTotal: 50, EntradasTotales: 1, FormaPago: models.PagoEfectivo},
	}})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analisis-horarios", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	env := decode(t, resp.Body)
	require.True(t, env.Success)

	var analisis models.AnalisisHorarios
	require.NoError(t, json.Unmarshal(env.Data, &analisis))
	assert.Len(t, analisis.VentasPorHora, 24)
	assert.Equal(t, 14, analisis.HoraPicoVentas)
	assert.Equal(t, 150.0, analisis.DistribucionPorPeriodo.Tarde.Total)
	assert.Equal(t, 75.0, analisis.TicketPromedio)
}
