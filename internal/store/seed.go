package store

import (
	"github.com/aquihaydesarrollo/a-digital-central/internal/model"

	"github.com/shopspring/decimal"
)

// IsInitialized reports whether the store already holds a firm profile, which
// marks the store as seeded.
func (s *Store) IsInitialized() (bool, error) {
	a, err := s.GetAsesoria()
	if err != nil {
		return false, err
	}
	return a != nil, nil
}

// Initialize seeds the store on first start and reports whether seeding
// happened. It is idempotent: once a firm profile exists nothing is ever
// overwritten.
func (s *Store) Initialize() (bool, error) {
	initialized, err := s.IsInitialized()
	if err != nil {
		return false, err
	}
	if initialized {
		return false, nil
	}
	if err := s.Seed(); err != nil {
		return false, err
	}
	return true, nil
}

// Seed writes the default firm profile, empty collections, the sample clients
// and the fixed service catalog. Callers wanting idempotence use Initialize.
func (s *Store) Seed() error {
	asesoria := model.Asesoria{
		Nombre:    "Asesoría Fiscal & Contable S.L.",
		CIF:       "B12345678",
		Direccion: "Calle Gran Vía 123, 28013 Madrid",
		Telefono:  "912345678",
		Email:     "contacto@asesoriafiscal.es",
	}
	asesoria.ID = s.newID()
	if err := s.setJSON(model.KeyAsesoria, asesoria); err != nil {
		return err
	}

	for _, col := range []string{
		model.ColEmpleados,
		model.ColEmpleadosCliente,
		model.ColFacturas,
		model.ColDocumentos,
		model.ColTareas,
	} {
		if err := s.writeList(col, nil); err != nil {
			return err
		}
	}

	clientes := []model.Cliente{
		{
			AsesoriaID:         asesoria.ID,
			Nombre:             "Restaurante El Buen Sabor S.L.",
			NIF:                "B87654321",
			Direccion:          "Calle Serrano 45, 28001 Madrid",
			Telefono:           "911222333",
			Email:              "info@elbuensabor.es",
			PersonaContacto:    "María López",
			PeriodicidadFiscal: "Trimestral",
			ModelosFiscales:    "303, 390, 111",
			TipoImpuesto:       "General",
		},
		{
			AsesoriaID:         asesoria.ID,
			Nombre:             "Talleres Mecánicos Rodríguez",
			NIF:                "12345678Z",
			Direccion:          "Polígono Industrial Norte 23, 28760 Tres Cantos",
			Telefono:           "911333444",
			Email:              "talleres@rodriguez.com",
			PersonaContacto:    "Antonio Rodríguez",
			PeriodicidadFiscal: "Trimestral",
			ModelosFiscales:    "303, 100, 115",
			TipoImpuesto:       "Reducido",
		},
		{
			AsesoriaID:         asesoria.ID,
			Nombre:             "Consultora Tecnológica Innova",
			NIF:                "A12345678",
			Direccion:          "Paseo de la Castellana 200, 28046 Madrid",
			Telefono:           "917654321",
			Email:              "contacto@innova.tech",
			PersonaContacto:    "Carlos Gómez",
			PeriodicidadFiscal: "Mensual",
			ModelosFiscales:    "303, 200, 115, 180",
			TipoImpuesto:       "General",
		},
	}
	for i := range clientes {
		clientes[i].ID = s.newID()
	}
	if err := s.setJSON(model.ColClientes, clientes); err != nil {
		return err
	}

	servicios := []model.Servicio{
		{
			Nombre:      "Asesoramiento Fiscal",
			Descripcion: "Servicio completo de asesoramiento fiscal para autónomos y empresas.",
			Precio:      decimal.NewFromInt(120),
			Categoria:   "fiscal",
			Imagen:      "/services/fiscal.jpg",
		},
		{
			Nombre:      "Contabilidad Mensual",
			Descripcion: "Gestión contable mensual para empresas con registro de facturas y elaboración de libros contables.",
			Precio:      decimal.NewFromInt(150),
			Categoria:   "contabilidad",
			Imagen:      "/services/contabilidad.jpg",
		},
		{
			Nombre:      "Nóminas y Seguridad Social",
			Descripcion: "Gestión de nóminas, seguros sociales y trámites con la Seguridad Social.",
			Precio:      decimal.NewFromInt(80),
			Categoria:   "laboral",
			Imagen:      "/services/laboral.jpg",
		},
		{
			Nombre:      "Declaraciones Trimestrales",
			Descripcion: "Preparación y presentación de impuestos trimestrales (IVA, IRPF, etc.).",
			Precio:      decimal.NewFromInt(100),
			Categoria:   "fiscal",
			Imagen:      "/services/impuestos.jpg",
		},
		{
			Nombre:      "Constitución de Sociedades",
			Descripcion: "Asesoramiento y gestión completa para la creación de nuevas empresas.",
			Precio:      decimal.NewFromInt(350),
			Categoria:   "juridico",
			Imagen:      "/services/sociedades.jpg",
		},
		{
			Nombre:      "Consultoría Estratégica",
			Descripcion: "Análisis de negocio y consultoría para optimización fiscal y financiera.",
			Precio:      decimal.NewFromInt(200),
			Categoria:   "consultoria",
			Imagen:      "/services/consultoria.jpg",
		},
	}
	for i := range servicios {
		servicios[i].ID = s.newID()
	}
	if err := s.setJSON(model.ColServicios, servicios); err != nil {
		return err
	}

	return s.setJSON(model.KeyCarrito, model.NuevoCarrito())
}
