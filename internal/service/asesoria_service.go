package service

import (
	"context"
	"fmt"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"
)

// AsesoriaService manages the firm profile singleton.
type AsesoriaService interface {
	GetAsesoria(ctx context.Context) (*model.Asesoria, error)
	UpdateAsesoria(ctx context.Context, asesoria model.Asesoria) (model.Asesoria, error)
}

type asesoriaService struct {
	store    *store.Store
	notifier Notifier
}

// NewAsesoriaService returns an AsesoriaService over the given store.
func NewAsesoriaService(st *store.Store, notifier Notifier) AsesoriaService {
	if notifier == nil {
		notifier = NoopNotifier
	}
	return &asesoriaService{store: st, notifier: notifier}
}

func (s *asesoriaService) GetAsesoria(ctx context.Context) (*model.Asesoria, error) {
	return s.store.GetAsesoria()
}

// UpdateAsesoria overwrites the firm profile. The id assigned at seed time is
// immutable; whatever the caller sent is replaced with the stored one.
func (s *asesoriaService) UpdateAsesoria(ctx context.Context, asesoria model.Asesoria) (model.Asesoria, error) {
	if asesoria.Nombre == "" {
		return model.Asesoria{}, fmt.Errorf("nombre is required")
	}

	current, err := s.store.GetAsesoria()
	if err != nil {
		return model.Asesoria{}, err
	}
	if current != nil {
		asesoria.ID = current.ID
	}

	saved, err := s.store.SaveAsesoria(asesoria)
	if err != nil {
		return model.Asesoria{}, fmt.Errorf("failed to save asesoria: %w", err)
	}

	s.notifier.BroadcastChange(model.KeyAsesoria, AccionGuardado, saved.ID)
	return saved, nil
}
