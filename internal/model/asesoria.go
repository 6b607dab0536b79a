package model

// Asesoria is the advisory firm's own profile. There is exactly one, stored
// under KeyAsesoria; clientes and empleados reference it by AsesoriaID.
type Asesoria struct {
	Registro
	Nombre    string `json:"nombre"`
	CIF       string `json:"cif"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}
