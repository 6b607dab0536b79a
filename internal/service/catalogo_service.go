package service

import (
	"context"
	"fmt"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"
)

// CatalogoService exposes the service catalog shown on the public site.
// Reads are public; upserts are an admin operation.
type CatalogoService interface {
	ListServicios(ctx context.Context) ([]model.Servicio, error)
	GetServicio(ctx context.Context, id string) (*model.Servicio, error)
	SaveServicio(ctx context.Context, servicio model.Servicio) (model.Servicio, error)
	DeleteServicio(ctx context.Context, id string) (bool, error)
}

type catalogoService struct {
	store    *store.Store
	notifier Notifier
}

// NewCatalogoService returns a CatalogoService over the given store.
func NewCatalogoService(st *store.Store, notifier Notifier) CatalogoService {
	if notifier == nil {
		notifier = NoopNotifier
	}
	return &catalogoService{store: st, notifier: notifier}
}

func (s *catalogoService) ListServicios(ctx context.Context) ([]model.Servicio, error) {
	return store.GetAll[model.Servicio](s.store, model.ColServicios)
}

func (s *catalogoService) GetServicio(ctx context.Context, id string) (*model.Servicio, error) {
	return store.GetByID[model.Servicio](s.store, model.ColServicios, id)
}

func (s *catalogoService) SaveServicio(ctx context.Context, servicio model.Servicio) (model.Servicio, error) {
	if servicio.Nombre == "" {
		return model.Servicio{}, fmt.Errorf("nombre is required")
	}
	if servicio.Precio.IsNegative() {
		return model.Servicio{}, fmt.Errorf("precio cannot be negative")
	}

	saved, err := store.Save[model.Servicio](s.store, model.ColServicios, servicio)
	if err != nil {
		return model.Servicio{}, fmt.Errorf("failed to save servicio: %w", err)
	}

	s.notifier.BroadcastChange(model.ColServicios, AccionGuardado, saved.ID)
	return saved, nil
}

func (s *catalogoService) DeleteServicio(ctx context.Context, id string) (bool, error) {
	removed, err := s.store.Remove(model.ColServicios, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete servicio: %w", err)
	}
	if removed {
		s.notifier.BroadcastChange(model.ColServicios, AccionEliminado, id)
	}
	return removed, nil
}
