package service

import (
	"context"
	"fmt"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"
)

// EmpleadoService manages the firm's own staff records.
type EmpleadoService interface {
	ListEmpleados(ctx context.Context) ([]model.Empleado, error)
	GetEmpleado(ctx context.Context, id string) (*model.Empleado, error)
	SaveEmpleado(ctx context.Context, empleado model.Empleado) (model.Empleado, error)
	DeleteEmpleado(ctx context.Context, id string) (bool, error)
}

type empleadoService struct {
	store    *store.Store
	notifier Notifier
}

// NewEmpleadoService returns an EmpleadoService over the given store.
func NewEmpleadoService(st *store.Store, notifier Notifier) EmpleadoService {
	if notifier == nil {
		notifier = NoopNotifier
	}
	return &empleadoService{store: st, notifier: notifier}
}

func (s *empleadoService) ListEmpleados(ctx context.Context) ([]model.Empleado, error) {
	return store.GetAll[model.Empleado](s.store, model.ColEmpleados)
}

func (s *empleadoService) GetEmpleado(ctx context.Context, id string) (*model.Empleado, error) {
	return store.GetByID[model.Empleado](s.store, model.ColEmpleados, id)
}

func (s *empleadoService) SaveEmpleado(ctx context.Context, empleado model.Empleado) (model.Empleado, error) {
	if empleado.Nombre == "" {
		return model.Empleado{}, fmt.Errorf("nombre is required")
	}
	if empleado.DNI == "" {
		return model.Empleado{}, fmt.Errorf("dni is required")
	}

	saved, err := store.Save[model.Empleado](s.store, model.ColEmpleados, empleado)
	if err != nil {
		return model.Empleado{}, fmt.Errorf("failed to save empleado: %w", err)
	}

	s.notifier.BroadcastChange(model.ColEmpleados, AccionGuardado, saved.ID)
	return saved, nil
}

func (s *empleadoService) DeleteEmpleado(ctx context.Context, id string) (bool, error) {
	removed, err := s.store.Remove(model.ColEmpleados, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete empleado: %w", err)
	}
	if removed {
		s.notifier.BroadcastChange(model.ColEmpleados, AccionEliminado, id)
	}
	return removed, nil
}
