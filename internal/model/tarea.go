package model

import "time"

// Tarea status constants.
const (
	TareaPendiente  = "pendiente"
	TareaEnProgreso = "en progreso"
	TareaCompletada = "completada"
)

// Tarea priority constants.
const (
	PrioridadBaja    = "baja"
	PrioridadMedia   = "media"
	PrioridadAlta    = "alta"
	PrioridadUrgente = "urgente"
)

// Tarea is a unit of work owed to a client, shown in the task list and the
// calendar views.
type Tarea struct {
	Registro
	ClienteID         string    `json:"clienteId"`
	Descripcion       string    `json:"descripcion"`
	Responsable       string    `json:"responsable"`
	FechaLimite       time.Time `json:"fechaLimite"`
	Estado            string    `json:"estado"`
	TipoTarea         string    `json:"tipoTarea"`
	Prioridad         string    `json:"prioridad"`
	FechaRecordatorio time.Time `json:"fechaRecordatorio"`
}
