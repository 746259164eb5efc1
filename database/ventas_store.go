package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Brandongr90/la-gruta-dashboard/models"
	"github.com/Brandongr90/la-gruta-dashboard/reports"
	"github.com/Brandongr90/la-gruta-dashboard/utils"
)

// VentasStore reads the ventas table directly over Postgres. It implements
// the same source contract as the Supabase REST client for deployments that
// talk to the database without PostgREST in between.
type VentasStore struct {
	pool *pgxpool.Pool
}

func NewVentasStore(pool *pgxpool.Pool) *VentasStore {
	return &VentasStore{pool: pool}
}

// FetchVentas returns every venta inside the window, both ends inclusive.
// Numeric columns are scanned as text and parsed tolerantly, so a NULL or
// malformed field becomes zero instead of failing the batch.
func (s *VentasStore) FetchVentas(ctx context.Context, w reports.TimeWindow) ([]models.Venta, error) {
	query := `
		SELECT fecha_hora, monto_total::text, entradas_totales::text, cortesias::text, forma_pago, terminal
		FROM ventas
		WHERE fecha_hora BETWEEN $1 AND $2
		ORDER BY fecha_hora ASC
	`
	rows, err := s.pool.Query(ctx, query, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("error querying ventas: %w", err)
	}
	defer rows.Close()

	ventas := make([]models.Venta, 0)
	for rows.Next() {
		var fechaHora time.Time
		var monto, entradas, cortesias, formaPago, terminal sql.NullString
		if err := rows.Scan(&fechaHora, &monto, &entradas, &cortesias, &formaPago, &terminal); err != nil {
			return nil, fmt.Errorf("error scanning venta: %w", err)
		}
		ventas = append(ventas, models.Venta{
			FechaHora:       fechaHora,
			MontoTotal:      utils.ParseFloatOrZero(utils.NullStringToString(monto)),
			EntradasTotales: utils.ParseIntOrZero(utils.NullStringToString(entradas)),
			Cortesias:       utils.ParseIntOrZero(utils.NullStringToString(cortesias)),
			FormaPago:       utils.NullStringToString(formaPago),
			Terminal:        utils.NullStringToString(terminal),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading ventas rows: %w", err)
	}
	return ventas, nil
}
