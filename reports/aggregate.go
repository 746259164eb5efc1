package reports

import "github.com/Brandongr90/la-gruta-dashboard/models"

// Reduce folds a batch of ventas into the period's totals in a single pass.
// Accumulation is commutative, so permuting the batch yields the same totals
// up to floating-point tolerance.
//
// Every venta increments total_ventas and contributes its entradas and
// cortesias. The amount lands in the accumulator of its payment method; a
// tarjeta sale routes by terminal, and an unrecognized forma_pago or
// terminal leaves the amount out of every method accumulator.
func Reduce(ventas []models.Venta) models.Totales {
	var acc models.Totales
	for _, venta := range ventas {
		acc.TotalVentas++
		acc.TotalEntradas += venta.EntradasTotales
		acc.TotalCortesias += venta.Cortesias

		switch venta.FormaPago {
		case models.PagoEfectivo:
			acc.TotalEfectivo += venta.MontoTotal
		case models.PagoTransferencia:
			acc.TotalTransferencia += venta.MontoTotal
		case models.PagoTarjeta:
			switch venta.Terminal {
			case models.Terminal1:
				acc.TotalTerminal1 += venta.MontoTotal
			case models.Terminal2:
				acc.TotalTerminal2 += venta.MontoTotal
			}
		}
	}
	return acc
}
