package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"
)

// TareaFilter narrows task listings. Empty fields match everything.
type TareaFilter struct {
	ClienteID string
	Estado    string
	Prioridad string
}

// TareaService manages tasks, including the derived views the dashboard and
// the calendar consume.
type TareaService interface {
	ListTareas(ctx context.Context, filter TareaFilter) ([]model.Tarea, error)
	GetTarea(ctx context.Context, id string) (*model.Tarea, error)
	SaveTarea(ctx context.Context, tarea model.Tarea) (model.Tarea, error)
	DeleteTarea(ctx context.Context, id string) (bool, error)
	TareasDeCliente(ctx context.Context, clienteID string) ([]model.Tarea, error)
	// Pendientes returns every task not yet completed, earliest deadline first.
	Pendientes(ctx context.Context) ([]model.Tarea, error)
	// Calendario returns tasks whose deadline falls within [desde, hasta).
	Calendario(ctx context.Context, desde, hasta time.Time) ([]model.Tarea, error)
}

var estadosTarea = map[string]bool{
	model.TareaPendiente:  true,
	model.TareaEnProgreso: true,
	model.TareaCompletada: true,
}

var prioridadesTarea = map[string]bool{
	model.PrioridadBaja:    true,
	model.PrioridadMedia:   true,
	model.PrioridadAlta:    true,
	model.PrioridadUrgente: true,
}

type tareaService struct {
	store    *store.Store
	notifier Notifier
}

// NewTareaService returns a TareaService over the given store.
func NewTareaService(st *store.Store, notifier Notifier) TareaService {
	if notifier == nil {
		notifier = NoopNotifier
	}
	return &tareaService{store: st, notifier: notifier}
}

func (s *tareaService) ListTareas(ctx context.Context, filter TareaFilter) ([]model.Tarea, error) {
	tareas, err := store.GetAll[model.Tarea](s.store, model.ColTareas)
	if err != nil {
		return nil, err
	}

	res := make([]model.Tarea, 0, len(tareas))
	for _, t := range tareas {
		if filter.ClienteID != "" && t.ClienteID != filter.ClienteID {
			continue
		}
		if filter.Estado != "" && t.Estado != filter.Estado {
			continue
		}
		if filter.Prioridad != "" && t.Prioridad != filter.Prioridad {
			continue
		}
		res = append(res, t)
	}
	return res, nil
}

func (s *tareaService) GetTarea(ctx context.Context, id string) (*model.Tarea, error) {
	return store.GetByID[model.Tarea](s.store, model.ColTareas, id)
}

func (s *tareaService) SaveTarea(ctx context.Context, tarea model.Tarea) (model.Tarea, error) {
	if tarea.ClienteID == "" {
		return model.Tarea{}, fmt.Errorf("clienteId is required")
	}
	if tarea.Descripcion == "" {
		return model.Tarea{}, fmt.Errorf("descripcion is required")
	}
	if tarea.Estado == "" {
		tarea.Estado = model.TareaPendiente
	}
	if !estadosTarea[tarea.Estado] {
		return model.Tarea{}, fmt.Errorf("invalid estado %q", tarea.Estado)
	}
	if tarea.Prioridad == "" {
		tarea.Prioridad = model.PrioridadMedia
	}
	if !prioridadesTarea[tarea.Prioridad] {
		return model.Tarea{}, fmt.Errorf("invalid prioridad %q", tarea.Prioridad)
	}

	saved, err := store.Save[model.Tarea](s.store, model.ColTareas, tarea)
	if err != nil {
		return model.Tarea{}, fmt.Errorf("failed to save tarea: %w", err)
	}

	s.notifier.BroadcastChange(model.ColTareas, AccionGuardado, saved.ID)
	return saved, nil
}

func (s *tareaService) DeleteTarea(ctx context.Context, id string) (bool, error) {
	removed, err := s.store.Remove(model.ColTareas, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete tarea: %w", err)
	}
	if removed {
		s.notifier.BroadcastChange(model.ColTareas, AccionEliminado, id)
	}
	return removed, nil
}

func (s *tareaService) TareasDeCliente(ctx context.Context, clienteID string) ([]model.Tarea, error) {
	return s.store.TareasDeCliente(clienteID)
}

func (s *tareaService) Pendientes(ctx context.Context) ([]model.Tarea, error) {
	tareas, err := store.GetAll[model.Tarea](s.store, model.ColTareas)
	if err != nil {
		return nil, err
	}

	pendientes := make([]model.Tarea, 0, len(tareas))
	for _, t := range tareas {
		if t.Estado != model.TareaCompletada {
			pendientes = append(pendientes, t)
		}
	}
	sort.Slice(pendientes, func(i, j int) bool {
		return pendientes[i].FechaLimite.Before(pendientes[j].FechaLimite)
	})
	return pendientes, nil
}

func (s *tareaService) Calendario(ctx context.Context, desde, hasta time.Time) ([]model.Tarea, error) {
	tareas, err := store.GetAll[model.Tarea](s.store, model.ColTareas)
	if err != nil {
		return nil, err
	}

	res := make([]model.Tarea, 0, len(tareas))
	for _, t := range tareas {
		if t.FechaLimite.Before(desde) || !t.FechaLimite.Before(hasta) {
			continue
		}
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].FechaLimite.Before(res[j].FechaLimite)
	})
	return res, nil
}
