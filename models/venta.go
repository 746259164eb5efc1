package models

import (
	"encoding/json"
	"time"

	"github.com/Brandongr90/la-gruta-dashboard/utils"
)

// Payment methods as stored in the ventas table.
const (
	PagoEfectivo      = "efectivo"
	PagoTransferencia = "transferencia"
	PagoTarjeta       = "tarjeta"
)

// Card terminals. Terminal is only meaningful when FormaPago is tarjeta.
const (
	Terminal1 = "terminal1"
	Terminal2 = "terminal2"
)

// Venta is a single sales transaction as returned by the ventas source.
// Records are externally supplied and immutable; the report engine never
// writes them back.
type Venta struct {
	FechaHora       time.Time `json:"fecha_hora"`
	MontoTotal      float64   `json:"monto_total"`
	EntradasTotales int       `json:"entradas_totales"`
	Cortesias       int       `json:"cortesias"`
	FormaPago       string    `json:"forma_pago"`
	Terminal        string    `json:"terminal,omitempty"`
}

// ventaJSON mirrors the raw wire record. Numeric fields come back from
// Supabase as either JSON numbers or strings depending on the column type,
// so they are captured raw and parsed tolerantly.
type ventaJSON struct {
	FechaHora       string          `json:"fecha_hora"`
	MontoTotal      json.RawMessage `json:"monto_total"`
	EntradasTotales json.RawMessage `json:"entradas_totales"`
	Cortesias       json.RawMessage `json:"cortesias"`
	FormaPago       string          `json:"forma_pago"`
	Terminal        string          `json:"terminal"`
}

// UnmarshalJSON decodes a raw venta record. A numeric field that fails to
// parse becomes zero; one bad field never fails the whole batch.
func (v *Venta) UnmarshalJSON(data []byte) error {
	var raw ventaJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v.FechaHora = parseTimestamp(raw.FechaHora)
	v.MontoTotal = utils.ParseFloatOrZero(rawToString(raw.MontoTotal))
	v.EntradasTotales = utils.ParseIntOrZero(rawToString(raw.EntradasTotales))
	v.Cortesias = utils.ParseIntOrZero(rawToString(raw.Cortesias))
	v.FormaPago = raw.FormaPago
	v.Terminal = raw.Terminal
	return nil
}

// rawToString unwraps a raw JSON token into the text its number should be
// parsed from. Quoted strings are unquoted; numbers pass through as-is.
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// parseTimestamp tries the formats the ventas table has been observed to
// emit. An unparseable timestamp yields the zero time instead of an error.
func parseTimestamp(s string) time.Time {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
