package model

import "time"

// Documento is a piece of client paperwork (tax forms, contracts, payslips).
// Only metadata is stored; URLArchivo points at the file itself.
type Documento struct {
	Registro
	ClienteID     string    `json:"clienteId"`
	Tipo          string    `json:"tipo"`
	Descripcion   string    `json:"descripcion"`
	FechaSubida   time.Time `json:"fechaSubida"`
	URLArchivo    string    `json:"urlArchivo"`
	Version       string    `json:"version"`
	UsuarioSubida string    `json:"usuarioSubida"`
}
