package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmpleadoCliente is an employee on a client's payroll, managed by the firm
// for the labour side of the advisory (nóminas, seguros sociales).
type EmpleadoCliente struct {
	Registro
	ClienteID    string          `json:"clienteId"`
	Nombre       string          `json:"nombre"`
	DNI          string          `json:"dni"`
	Puesto       string          `json:"puesto"`
	FechaAlta    time.Time       `json:"fechaAlta"`
	FechaBaja    *time.Time      `json:"fechaBaja"`
	TipoContrato string          `json:"tipoContrato"`
	Jornada      string          `json:"jornada"`
	SalarioBase  decimal.Decimal `json:"salarioBase"`
	Complementos decimal.Decimal `json:"complementos"`
	Deducciones  decimal.Decimal `json:"deducciones"`
	IRPF         decimal.Decimal `json:"irpf"` // withholding rate, percent
	SS           decimal.Decimal `json:"ss"`   // social security rate, percent
}
