package model

import "github.com/shopspring/decimal"

// Servicio is an entry of the fixed service catalog sold through the public
// site (asesoramiento fiscal, contabilidad, nóminas...).
type Servicio struct {
	Registro
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Categoria   string          `json:"categoria"`
	Imagen      string          `json:"imagen"`
}
