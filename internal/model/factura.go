package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura direction constants.
const (
	FacturaEmitida  = "emitida"
	FacturaRecibida = "recibida"
)

// Payment status constants.
const (
	PagoPendiente = "pendiente"
	PagoPagada    = "pagada"
)

// Factura is an invoice issued or received by a client. Total is derived
// (base + base*iva/100); it is stored for convenience but recomputed on every
// save, never trusted on input.
type Factura struct {
	Registro
	ClienteID     string          `json:"clienteId"`
	Tipo          string          `json:"tipo"` // emitida, recibida
	Numero        string          `json:"numero"`
	Fecha         time.Time       `json:"fecha"`
	Concepto      string          `json:"concepto"`
	BaseImponible decimal.Decimal `json:"baseImponible"`
	IVA           decimal.Decimal `json:"iva"` // tax rate, percent
	Total         decimal.Decimal `json:"total"`
	EstadoPago    string          `json:"estadoPago"`
	MetodoPago    string          `json:"metodoPago"`
}

// CalcularTotal returns base + base*iva/100 rounded to cents.
func (f *Factura) CalcularTotal() decimal.Decimal {
	iva := f.BaseImponible.Mul(f.IVA).Div(decimal.NewFromInt(100))
	return f.BaseImponible.Add(iva).Round(2)
}
