package models

// Totales holds the fixed accumulators of one report period. All fields
// start at zero and only grow during a single reduction.
//
// A tarjeta sale with a missing or unrecognized terminal is counted in
// total_ventas/total_entradas/total_cortesias but in neither terminal
// amount. That matches the production behavior and is intentional.
type Totales struct {
	TotalEntradas      int     `json:"total_entradas"`
	TotalCortesias     int     `json:"total_cortesias"`
	TotalEfectivo      float64 `json:"total_efectivo"`
	TotalTransferencia float64 `json:"total_transferencia"`
	TotalTerminal1     float64 `json:"total_terminal1"`
	TotalTerminal2     float64 `json:"total_terminal2"`
	TotalVentas        int     `json:"total_ventas"`
}

// VentasHora is one hour-of-day bucket. The hourly breakdown always carries
// all 24 buckets, zero-filled where the venue had no activity.
type VentasHora struct {
	Hora     int     `json:"hora"`
	HoraFmt  string  `json:"horaFormato"`
	Total    float64 `json:"total"`
	Ventas   int     `json:"ventas"`
	Entradas int     `json:"entradas"`
}

// VentasDia is one day-of-month bucket. The monthly breakdown carries every
// day 1..N of the month, zero-filled where absent.
type VentasDia struct {
	Dia      int     `json:"dia"`
	Total    float64 `json:"total"`
	Ventas   int     `json:"ventas"`
	Entradas int     `json:"entradas"`
}

// VentasDiaSemana is the value of the weekly per-weekday map. Unlike the
// monthly breakdown this map only holds weekdays that had activity.
type VentasDiaSemana struct {
	Total  float64 `json:"total"`
	Ventas int     `json:"ventas"`
}

// VentasSemana is a contiguous span of days of one month, closed on Sunday
// or on the last day of the month. Semana is 1-based in emission order.
type VentasSemana struct {
	Semana   int     `json:"semana"`
	Rango    string  `json:"rango"`
	Total    float64 `json:"total"`
	Ventas   int     `json:"ventas"`
	Entradas int     `json:"entradas"`
}

// PeriodoTotales accumulates one day-part of the hourly analysis.
type PeriodoTotales struct {
	Total  float64 `json:"total"`
	Ventas int     `json:"ventas"`
}

// DistribucionPeriodos folds the 24 hour buckets into the four day-parts:
// madrugada 0-5, mañana 6-11, tarde 12-17, noche 18-23.
type DistribucionPeriodos struct {
	Manana    PeriodoTotales `json:"mañana"`
	Tarde     PeriodoTotales `json:"tarde"`
	Noche     PeriodoTotales `json:"noche"`
	Madrugada PeriodoTotales `json:"madrugada"`
}

// ReporteSemanal is the current-week report: period totals plus the sparse
// per-weekday breakdown and the week's date bounds.
type ReporteSemanal struct {
	Totales
	VentasPorDia map[string]VentasDiaSemana `json:"ventasPorDia"`
	FechaInicio  string                     `json:"fechaInicio"`
	FechaFin     string                     `json:"fechaFin"`
}

// MetricasMensuales is the current-month report: period totals, the dense
// day-of-month breakdown, the week segmentation and the month's bounds.
type MetricasMensuales struct {
	Totales
	VentasPorDia    []VentasDia    `json:"ventasPorDia"`
	VentasPorSemana []VentasSemana `json:"ventasPorSemana"`
	Mes             string         `json:"mes"`
	Anio            int            `json:"año"`
	FechaInicio     string         `json:"fechaInicio"`
	FechaFin        string         `json:"fechaFin"`
}

// AnalisisHorarios is the hourly analysis of the current month.
type AnalisisHorarios struct {
	VentasPorHora          []VentasHora         `json:"ventasPorHora"`
	HoraPicoVentas         int                  `json:"horaPicoVentas"`
	HoraPicoIngresos       int                  `json:"horaPicoIngresos"`
	TicketPromedio         float64              `json:"ticketPromedio"`
	EntradasPromedio       float64              `json:"entradasPromedio"`
	HoraApertura           int                  `json:"horaApertura"`
	HoraCierre             int                  `json:"horaCierre"`
	DistribucionPorPeriodo DistribucionPeriodos `json:"distribucionPorPeriodo"`
	TotalVentas            int                  `json:"totalVentas"`
	TotalIngresos          float64              `json:"totalIngresos"`
	TotalEntradas          int                  `json:"totalEntradas"`
	Mes                    string               `json:"mes"`
	Anio                   int                  `json:"año"`
}
