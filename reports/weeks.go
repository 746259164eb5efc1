package reports

import (
	"fmt"
	"time"

	"github.com/Brandongr90/la-gruta-dashboard/models"
)

// SegmentarSemanas partitions a month's day buckets into contiguous week
// ranges. A running week closes when the day is a Sunday or the last day of
// the month, whichever comes first, so the first and last ranges may hold
// fewer than seven days. Ranges are 1-indexed in emission order and together
// cover days 1..N exactly once.
func SegmentarSemanas(dias []models.VentasDia, weekdayOf func(dia int) time.Weekday) []models.VentasSemana {
	semanas := make([]models.VentasSemana, 0, 6)
	inicio := 1
	for dia := 1; dia <= len(dias); dia++ {
		if weekdayOf(dia) != time.Sunday && dia != len(dias) {
			continue
		}
		semana := models.VentasSemana{
			Semana: len(semanas) + 1,
			Rango:  fmt.Sprintf("%d-%d", inicio, dia),
		}
		for d := inicio; d <= dia; d++ {
			semana.Total += dias[d-1].Total
			semana.Ventas += dias[d-1].Ventas
			semana.Entradas += dias[d-1].Entradas
		}
		semanas = append(semanas, semana)
		inicio = dia + 1
	}
	return semanas
}
