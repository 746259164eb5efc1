package reports

import (
	"context"
	"time"

	"github.com/Brandongr90/la-gruta-dashboard/models"
)

// Source fetches the complete, unpaginated batch of ventas whose fecha_hora
// falls inside the window, both ends inclusive. A non-success response from
// the backing store is an error; the report for that invocation is aborted
// rather than built from a partial batch.
type Source interface {
	FetchVentas(ctx context.Context, w TimeWindow) ([]models.Venta, error)
}

// mesesDelAnio are the Spanish month names used in report headers.
var mesesDelAnio = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Service assembles the four report shapes from one fetched batch. All
// aggregation is pure and in-memory; the fetch is the only suspension point,
// so any number of reports may run concurrently without coordination.
type Service struct {
	source Source
	loc    *time.Location
}

func NewService(source Source, loc *time.Location) *Service {
	return &Service{source: source, loc: loc}
}

// Location returns the venue timezone the service resolves windows in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// ReporteDia returns the totals of the calendar day containing now.
func (s *Service) ReporteDia(ctx context.Context, now time.Time) (*models.Totales, error) {
	ventas, err := s.source.FetchVentas(ctx, ResolveDay(now, s.loc))
	if err != nil {
		return nil, err
	}
	totales := Reduce(ventas)
	return &totales, nil
}

// ReporteSemanal returns the totals of the Monday-Sunday week containing
// now, with the sparse per-weekday breakdown and the week's date bounds.
func (s *Service) ReporteSemanal(ctx context.Context, now time.Time) (*models.ReporteSemanal, error) {
	w := ResolveWeek(now, s.loc)
	ventas, err := s.source.FetchVentas(ctx, w)
	if err != nil {
		return nil, err
	}
	return &models.ReporteSemanal{
		Totales:      Reduce(ventas),
		VentasPorDia: PorDiaDeLaSemana(ventas, s.loc),
		FechaInicio:  w.Start.Format("2006-01-02"),
		FechaFin:     w.End.In(s.loc).Format("2006-01-02"),
	}, nil
}

// MetricasMensuales returns the totals of the month containing now, the
// dense per-day breakdown and its segmentation into week ranges.
func (s *Service) MetricasMensuales(ctx context.Context, now time.Time) (*models.MetricasMensuales, error) {
	w := ResolveMonth(now, s.loc)
	ventas, err := s.source.FetchVentas(ctx, w)
	if err != nil {
		return nil, err
	}

	year, month, _ := w.Start.Date()
	weekdayOf := func(dia int) time.Weekday {
		return time.Date(year, month, dia, 12, 0, 0, 0, s.loc).Weekday()
	}

	dias := PorDiaDelMes(ventas, w)
	return &models.MetricasMensuales{
		Totales:         Reduce(ventas),
		VentasPorDia:    dias,
		VentasPorSemana: SegmentarSemanas(dias, weekdayOf),
		Mes:             mesesDelAnio[month-1],
		Anio:            year,
		FechaInicio:     w.Start.Format("2006-01-02"),
		FechaFin:        w.End.In(s.loc).Format("2006-01-02"),
	}, nil
}

// AnalisisHorarios returns the hour-of-day analysis of the month containing
// now: the dense 24-bucket breakdown, peak hours, averages, inferred opening
// hours and the day-part distribution.
func (s *Service) AnalisisHorarios(ctx context.Context, now time.Time) (*models.AnalisisHorarios, error) {
	w := ResolveMonth(now, s.loc)
	ventas, err := s.source.FetchVentas(ctx, w)
	if err != nil {
		return nil, err
	}

	horas := PorHoraDelDia(ventas, s.loc)
	pico := HorasPico(horas)

	totalVentas := len(ventas)
	var totalIngresos float64
	var totalEntradas int
	for _, venta := range ventas {
		totalIngresos += venta.MontoTotal
		totalEntradas += venta.EntradasTotales
	}

	var ticketPromedio, entradasPromedio float64
	if totalVentas > 0 {
		ticketPromedio = totalIngresos / float64(totalVentas)
		entradasPromedio = float64(totalEntradas) / float64(totalVentas)
	}

	// Opening hours are inferred from activity; a fully idle window keeps
	// the 0..23 defaults.
	horaApertura, horaCierre := 0, 23
	for _, h := range horas {
		if h.Ventas > 0 {
			horaApertura = h.Hora
			break
		}
	}
	for i := len(horas) - 1; i >= 0; i-- {
		if horas[i].Ventas > 0 {
			horaCierre = horas[i].Hora
			break
		}
	}

	year, month, _ := w.Start.Date()
	return &models.AnalisisHorarios{
		VentasPorHora:          horas,
		HoraPicoVentas:         pico.HoraPicoVentas,
		HoraPicoIngresos:       pico.HoraPicoIngresos,
		TicketPromedio:         ticketPromedio,
		EntradasPromedio:       entradasPromedio,
		HoraApertura:           horaApertura,
		HoraCierre:             horaCierre,
		DistribucionPorPeriodo: DistribucionPorPeriodos(horas),
		TotalVentas:            totalVentas,
		TotalIngresos:          totalIngresos,
		TotalEntradas:          totalEntradas,
		Mes:                    mesesDelAnio[month-1],
		Anio:                   year,
	}, nil
}
