package reports

import "github.com/Brandongr90/la-gruta-dashboard/models"

// DistribucionPorPeriodos folds the hour buckets into the four day-parts.
// Each hour contributes to exactly one period: madrugada 0-5, mañana 6-11,
// tarde 12-17, noche 18-23.
func DistribucionPorPeriodos(horas []models.VentasHora) models.DistribucionPeriodos {
	var dist models.DistribucionPeriodos
	for _, h := range horas {
		var periodo *models.PeriodoTotales
		switch {
		case h.Hora >= 6 && h.Hora < 12:
			periodo = &dist.Manana
		case h.Hora >= 12 && h.Hora < 18:
			periodo = &dist.Tarde
		case h.Hora >= 18 && h.Hora < 24:
			periodo = &dist.Noche
		default:
			periodo = &dist.Madrugada
		}
		periodo.Total += h.Total
		periodo.Ventas += h.Ventas
	}
	return dist
}
