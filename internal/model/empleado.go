package model

import "time"

// Empleado is a member of the firm's own staff.
type Empleado struct {
	Registro
	AsesoriaID string     `json:"asesoriaId"`
	Nombre     string     `json:"nombre"`
	DNI        string     `json:"dni"`
	Puesto     string     `json:"puesto"`
	Email      string     `json:"email"`
	FechaAlta  time.Time  `json:"fechaAlta"`
	FechaBaja  *time.Time `json:"fechaBaja"` // nil while the contract is active
}
