package model

// Collection keys in the underlying key-value store. The names match the
// layout written by the previous frontend, so a store populated by it stays
// readable without migration.
const (
	ColClientes         = "clientes"
	ColEmpleados        = "empleados"
	ColEmpleadosCliente = "empleadosCliente"
	ColFacturas         = "facturas"
	ColDocumentos       = "documentos"
	ColTareas           = "tareas"
	ColServicios        = "servicios"

	// Singleton slots, stored as single JSON objects rather than arrays.
	KeyAsesoria = "asesoria"
	KeyCarrito  = "carrito"
)

// Registro is the base embedded by every stored record. The ID is an opaque
// UUID assigned by the store on first save and immutable afterwards.
type Registro struct {
	ID string `json:"id"`
}

// GetID returns the record identifier.
func (r *Registro) GetID() string { return r.ID }

// SetID assigns the record identifier. Called by the store on insert only.
func (r *Registro) SetID(id string) { r.ID = id }
