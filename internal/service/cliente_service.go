package service

import (
	"context"
	"fmt"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"
)

// ClienteService exposes CRUD over the firm's client records. Saves are
// whole-record upserts: the form submits the complete record every time.
type ClienteService interface {
	ListClientes(ctx context.Context) ([]model.Cliente, error)
	GetCliente(ctx context.Context, id string) (*model.Cliente, error)
	SaveCliente(ctx context.Context, cliente model.Cliente) (model.Cliente, error)
	DeleteCliente(ctx context.Context, id string) (bool, error)
}

type clienteService struct {
	store    *store.Store
	notifier Notifier
}

// NewClienteService returns a ClienteService over the given store.
func NewClienteService(st *store.Store, notifier Notifier) ClienteService {
	if notifier == nil {
		notifier = NoopNotifier
	}
	return &clienteService{store: st, notifier: notifier}
}

func (s *clienteService) ListClientes(ctx context.Context) ([]model.Cliente, error) {
	return store.GetAll[model.Cliente](s.store, model.ColClientes)
}

func (s *clienteService) GetCliente(ctx context.Context, id string) (*model.Cliente, error) {
	return store.GetByID[model.Cliente](s.store, model.ColClientes, id)
}

func (s *clienteService) SaveCliente(ctx context.Context, cliente model.Cliente) (model.Cliente, error) {
	if cliente.Nombre == "" {
		return model.Cliente{}, fmt.Errorf("nombre is required")
	}

	saved, err := store.Save[model.Cliente](s.store, model.ColClientes, cliente)
	if err != nil {
		return model.Cliente{}, fmt.Errorf("failed to save cliente: %w", err)
	}

	s.notifier.BroadcastChange(model.ColClientes, AccionGuardado, saved.ID)
	return saved, nil
}

func (s *clienteService) DeleteCliente(ctx context.Context, id string) (bool, error) {
	removed, err := s.store.Remove(model.ColClientes, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete cliente: %w", err)
	}
	if removed {
		s.notifier.BroadcastChange(model.ColClientes, AccionEliminado, id)
	}
	return removed, nil
}
