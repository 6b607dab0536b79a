package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"
)

// DocumentoService manages client document metadata. The files themselves
// live wherever URLArchivo points.
type DocumentoService interface {
	ListDocumentos(ctx context.Context) ([]model.Documento, error)
	GetDocumento(ctx context.Context, id string) (*model.Documento, error)
	SaveDocumento(ctx context.Context, documento model.Documento) (model.Documento, error)
	DeleteDocumento(ctx context.Context, id string) (bool, error)
	DocumentosDeCliente(ctx context.Context, clienteID string) ([]model.Documento, error)
}

type documentoService struct {
	store    *store.Store
	notifier Notifier
	now      func() time.Time
}

// NewDocumentoService returns a DocumentoService over the given store.
func NewDocumentoService(st *store.Store, notifier Notifier) DocumentoService {
	if notifier == nil {
		notifier = NoopNotifier
	}
	return &documentoService{store: st, notifier: notifier, now: time.Now}
}

func (s *documentoService) ListDocumentos(ctx context.Context) ([]model.Documento, error) {
	return store.GetAll[model.Documento](s.store, model.ColDocumentos)
}

func (s *documentoService) GetDocumento(ctx context.Context, id string) (*model.Documento, error) {
	return store.GetByID[model.Documento](s.store, model.ColDocumentos, id)
}

func (s *documentoService) SaveDocumento(ctx context.Context, documento model.Documento) (model.Documento, error) {
	if documento.ClienteID == "" {
		return model.Documento{}, fmt.Errorf("clienteId is required")
	}
	if documento.Tipo == "" {
		return model.Documento{}, fmt.Errorf("tipo is required")
	}
	if documento.FechaSubida.IsZero() {
		documento.FechaSubida = s.now()
	}
	if documento.Version == "" {
		documento.Version = "1"
	}

	saved, err := store.Save[model.Documento](s.store, model.ColDocumentos, documento)
	if err != nil {
		return model.Documento{}, fmt.Errorf("failed to save documento: %w", err)
	}

	s.notifier.BroadcastChange(model.ColDocumentos, AccionGuardado, saved.ID)
	return saved, nil
}

func (s *documentoService) DeleteDocumento(ctx context.Context, id string) (bool, error) {
	removed, err := s.store.Remove(model.ColDocumentos, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete documento: %w", err)
	}
	if removed {
		s.notifier.BroadcastChange(model.ColDocumentos, AccionEliminado, id)
	}
	return removed, nil
}

func (s *documentoService) DocumentosDeCliente(ctx context.Context, clienteID string) ([]model.Documento, error) {
	return s.store.DocumentosDeCliente(clienteID)
}
