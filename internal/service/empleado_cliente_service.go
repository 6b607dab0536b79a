package service

import (
	"context"
	"fmt"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"
)

// EmpleadoClienteService manages the payroll employees of the firm's clients
// (the labour side of the advisory).
type EmpleadoClienteService interface {
	ListByCliente(ctx context.Context, clienteID string) ([]model.EmpleadoCliente, error)
	GetEmpleadoCliente(ctx context.Context, id string) (*model.EmpleadoCliente, error)
	SaveEmpleadoCliente(ctx context.Context, empleado model.EmpleadoCliente) (model.EmpleadoCliente, error)
	DeleteEmpleadoCliente(ctx context.Context, id string) (bool, error)
}

type empleadoClienteService struct {
	store    *store.Store
	notifier Notifier
}

// NewEmpleadoClienteService returns an EmpleadoClienteService over the store.
func NewEmpleadoClienteService(st *store.Store, notifier Notifier) EmpleadoClienteService {
	if notifier == nil {
		notifier = NoopNotifier
	}
	return &empleadoClienteService{store: st, notifier: notifier}
}

func (s *empleadoClienteService) ListByCliente(ctx context.Context, clienteID string) ([]model.EmpleadoCliente, error) {
	return s.store.EmpleadosDeCliente(clienteID)
}

func (s *empleadoClienteService) GetEmpleadoCliente(ctx context.Context, id string) (*model.EmpleadoCliente, error) {
	return store.GetByID[model.EmpleadoCliente](s.store, model.ColEmpleadosCliente, id)
}

func (s *empleadoClienteService) SaveEmpleadoCliente(ctx context.Context, empleado model.EmpleadoCliente) (model.EmpleadoCliente, error) {
	if empleado.ClienteID == "" {
		return model.EmpleadoCliente{}, fmt.Errorf("clienteId is required")
	}
	if empleado.Nombre == "" {
		return model.EmpleadoCliente{}, fmt.Errorf("nombre is required")
	}

	saved, err := store.Save[model.EmpleadoCliente](s.store, model.ColEmpleadosCliente, empleado)
	if err != nil {
		return model.EmpleadoCliente{}, fmt.Errorf("failed to save empleado de cliente: %w", err)
	}

	s.notifier.BroadcastChange(model.ColEmpleadosCliente, AccionGuardado, saved.ID)
	return saved, nil
}

func (s *empleadoClienteService) DeleteEmpleadoCliente(ctx context.Context, id string) (bool, error) {
	removed, err := s.store.Remove(model.ColEmpleadosCliente, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete empleado de cliente: %w", err)
	}
	if removed {
		s.notifier.BroadcastChange(model.ColEmpleadosCliente, AccionEliminado, id)
	}
	return removed, nil
}
