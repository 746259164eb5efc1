package reports

import "github.com/Brandongr90/la-gruta-dashboard/models"

// HorasPicoResult names the hour with the most ventas and the hour with the
// most revenue.
type HorasPicoResult struct {
	HoraPicoVentas   int
	HoraPicoIngresos int
}

// HorasPico scans the 24 hour buckets for the busiest hours. Comparisons
// are strictly greater-than against a running maximum that starts at zero
// on hour 0, so ties keep the earliest hour and an idle month reports 0/0.
func HorasPico(horas []models.VentasHora) HorasPicoResult {
	var pico HorasPicoResult
	maxVentas, maxIngresos := 0, 0.0
	for _, h := range horas {
		if h.Ventas > maxVentas {
			maxVentas = h.Ventas
			pico.HoraPicoVentas = h.Hora
		}
		if h.Total > maxIngresos {
			maxIngresos = h.Total
			pico.HoraPicoIngresos = h.Hora
		}
	}
	return pico
}
