package reports

import (
	"fmt"
	"time"

	"github.com/Brandongr90/la-gruta-dashboard/models"
)

// DiasSemana are the weekday names used as keys of the weekly breakdown,
// Sunday-first to match time.Weekday ordinals.
var DiasSemana = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// PorHoraDelDia groups a batch into the 24 hour-of-day buckets. The result
// always holds hours 0..23 in order, zero-filled, regardless of activity.
// Each timestamp is converted to loc before its hour is read.
func PorHoraDelDia(ventas []models.Venta, loc *time.Location) []models.VentasHora {
	horas := make([]models.VentasHora, 24)
	for h := range horas {
		horas[h].Hora = h
		horas[h].HoraFmt = fmt.Sprintf("%02d:00", h)
	}
	for _, venta := range ventas {
		h := venta.FechaHora.In(loc).Hour()
		horas[h].Total += venta.MontoTotal
		horas[h].Ventas++
		horas[h].Entradas += venta.EntradasTotales
	}
	return horas
}

// PorDiaDelMes groups a batch into day-of-month buckets for the window's
// month. Every day 1..N is present, zero-filled where the venue was idle.
func PorDiaDelMes(ventas []models.Venta, w TimeWindow) []models.VentasDia {
	dias := make([]models.VentasDia, w.Days())
	for d := range dias {
		dias[d].Dia = d + 1
	}
	for _, venta := range ventas {
		d := venta.FechaHora.In(w.Loc).Day()
		if d < 1 || d > len(dias) {
			continue
		}
		dias[d-1].Total += venta.MontoTotal
		dias[d-1].Ventas++
		dias[d-1].Entradas += venta.EntradasTotales
	}
	return dias
}

// PorDiaDeLaSemana groups a batch by weekday name. Only weekdays with at
// least one venta get a key; the map is intentionally sparse, in contrast
// with the dense day-of-month breakdown.
func PorDiaDeLaSemana(ventas []models.Venta, loc *time.Location) map[string]models.VentasDiaSemana {
	porDia := make(map[string]models.VentasDiaSemana)
	for _, venta := range ventas {
		nombre := DiasSemana[venta.FechaHora.In(loc).Weekday()]
		bucket := porDia[nombre]
		bucket.Total += venta.MontoTotal
		bucket.Ventas++
		porDia[nombre] = bucket
	}
	return porDia
}
