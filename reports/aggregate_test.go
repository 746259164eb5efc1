package reports_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Brandongr90/la-gruta-dashboard/models"
	"github.com/Brandongr90/la-gruta-dashboard/reports"
)

func venta(hora time.Time, monto float64, entradas, cortesias int, pago, terminal string) models.Venta {
	return models.Venta{
		FechaHora:       hora,
		MontoTotal:      monto,
		EntradasTotales: entradas,
		Cortesias:       cortesias,
		FormaPago:       pago,
		Terminal:        terminal,
	}
}

func TestReduce_PaymentMethodRouting(t *testing.T) {
	loc := mexicoCity(t)
	at := time.Date(2024, 3, 15, 14, 0, 0, 0, loc)

	totales := reports.Reduce([]models.Venta{
		venta(at, 200, 4, 0, models.PagoTarjeta, models.Terminal1),
		venta(at, 50, 2, 1, models.PagoEfectivo, ""),
	})

	assert.Equal(t, 2, totales.TotalVentas)
	assert.Equal(t, 6, totales.TotalEntradas)
	assert.Equal(t, 1, totales.TotalCortesias)
	assert.Equal(t, 50.0, totales.TotalEfectivo)
	assert.Equal(t, 0.0, totales.TotalTransferencia)
	assert.Equal(t, 200.0, totales.TotalTerminal1)
	assert.Equal(t, 0.0, totales.TotalTerminal2)
}

func TestReduce_CardWithoutTerminalCountsInUniversalTotalsOnly(t *testing.T) {
	loc := mexicoCity(t)
	at := time.Date(2024, 3, 15, 14, 0, 0, 0, loc)

	totales := reports.Reduce([]models.Venta{
		venta(at, 120, 3, 0, models.PagoTarjeta, ""),
		venta(at, 80, 2, 0, models.PagoTarjeta, "terminal9"),
	})

	assert.Equal(t, 2, totales.TotalVentas)
	assert.Equal(t, 5, totales.TotalEntradas)
	assert.Equal(t, 0.0, totales.TotalTerminal1)
	assert.Equal(t, 0.0, totales.TotalTerminal2)
}

func TestReduce_UnknownPaymentMethod(t *testing.T) {
	loc := mexicoCity(t)
	at := time.Date(2024, 3, 15, 14, 0, 0, 0, loc)

	totales := reports.Reduce([]models.Venta{
		venta(at, 75, 1, 0, "cheque", ""),
	})

	assert.Equal(t, 1, totales.TotalVentas)
	assert.Equal(t, 1, totales.TotalEntradas)
	assert.Equal(t, 0.0, totales.TotalEfectivo+totales.TotalTransferencia+totales.TotalTerminal1+totales.TotalTerminal2)
}

func TestReduce_EmptyBatch(t *testing.T) {
	assert.Equal(t, models.Totales{}, reports.Reduce(nil))
}

func TestReduce_OrderIndependent(t *testing.T) {
	loc := mexicoCity(t)
	rng := rand.New(rand.NewSource(7))

	pagos := []string{models.PagoEfectivo, models.PagoTransferencia, models.PagoTarjeta, "otro"}
	terminales := []string{models.Terminal1, models.Terminal2, ""}

	batch := make([]models.Venta, 200)
	for i := range batch {
		batch[i] = venta(
			time.Date(2024, 3, 1+rng.Intn(28), rng.Intn(24), 0, 0, 0, loc),
			float64(rng.Intn(10000))/100,
			rng.Intn(10),
			rng.Intn(3),
			pagos[rng.Intn(len(pagos))],
			terminales[rng.Intn(len(terminales))],
		)
	}

	want := reports.Reduce(batch)

	shuffled := make([]models.Venta, len(batch))
	copy(shuffled, batch)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	got := reports.Reduce(shuffled)

	assert.Equal(t, want.TotalVentas, got.TotalVentas)
	assert.Equal(t, want.TotalEntradas, got.TotalEntradas)
	assert.Equal(t, want.TotalCortesias, got.TotalCortesias)
	assert.InDelta(t, want.TotalEfectivo, got.TotalEfectivo, 1e-9)
	assert.InDelta(t, want.TotalTransferencia, got.TotalTransferencia, 1e-9)
	assert.InDelta(t, want.TotalTerminal1, got.TotalTerminal1, 1e-9)
	assert.InDelta(t, want.TotalTerminal2, got.TotalTerminal2, 1e-9)
}
