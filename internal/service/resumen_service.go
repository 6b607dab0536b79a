package service

import (
	"context"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"
)

// Resumen is the dashboard aggregate: the firm profile plus the derived lists
// the admin screens show on load.
type Resumen struct {
	Asesoria           *model.Asesoria `json:"asesoria"`
	TotalClientes      int             `json:"totalClientes"`
	TotalEmpleados     int             `json:"totalEmpleados"`
	TareasPendientes   []model.Tarea   `json:"tareasPendientes"`
	FacturasPendientes []model.Factura `json:"facturasPendientes"`
}

// ResumenService builds the dashboard aggregate in one call so views refresh
// all derived lists from a single round trip.
type ResumenService interface {
	GetResumen(ctx context.Context) (Resumen, error)
}

type resumenService struct {
	store  *store.Store
	tareas TareaService
}

// NewResumenService returns a ResumenService over the given store.
func NewResumenService(st *store.Store, tareas TareaService) ResumenService {
	return &resumenService{store: st, tareas: tareas}
}

func (s *resumenService) GetResumen(ctx context.Context) (Resumen, error) {
	asesoria, err := s.store.GetAsesoria()
	if err != nil {
		return Resumen{}, err
	}

	clientes, err := store.GetAll[model.Cliente](s.store, model.ColClientes)
	if err != nil {
		return Resumen{}, err
	}

	empleados, err := store.GetAll[model.Empleado](s.store, model.ColEmpleados)
	if err != nil {
		return Resumen{}, err
	}

	pendientes, err := s.tareas.Pendientes(ctx)
	if err != nil {
		return Resumen{}, err
	}

	facturas, err := store.GetAll[model.Factura](s.store, model.ColFacturas)
	if err != nil {
		return Resumen{}, err
	}
	sinPagar := make([]model.Factura, 0, len(facturas))
	for _, f := range facturas {
		if f.EstadoPago != model.PagoPagada {
			sinPagar = append(sinPagar, f)
		}
	}

	return Resumen{
		Asesoria:           asesoria,
		TotalClientes:      len(clientes),
		TotalEmpleados:     len(empleados),
		TareasPendientes:   pendientes,
		FacturasPendientes: sinPagar,
	}, nil
}
