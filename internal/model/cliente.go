package model

// Cliente is a company or self-employed person advised by the firm.
// The store does not enforce that AsesoriaID points at an existing firm
// profile; consumers must tolerate dangling references.
type Cliente struct {
	Registro
	AsesoriaID         string `json:"asesoriaId"`
	Nombre             string `json:"nombre"`
	NIF                string `json:"nif"`
	Direccion          string `json:"direccion"`
	Telefono           string `json:"telefono"`
	Email              string `json:"email"`
	PersonaContacto    string `json:"personaContacto"`
	PeriodicidadFiscal string `json:"periodicidadFiscal"` // Mensual, Trimestral, Anual
	ModelosFiscales    string `json:"modelosFiscales"`    // comma-separated AEAT form numbers
	TipoImpuesto       string `json:"tipoImpuesto"`
}
