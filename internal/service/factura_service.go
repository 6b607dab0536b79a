package service

import (
	"context"
	"fmt"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"
)

// FacturaFilter narrows invoice listings. Empty fields match everything.
type FacturaFilter struct {
	ClienteID  string
	Tipo       string // emitida, recibida
	EstadoPago string
}

// FacturaService manages client invoices. The stored total is derived from
// base and IVA rate on every save; whatever the caller sent as total is
// discarded and recomputed.
type FacturaService interface {
	ListFacturas(ctx context.Context, filter FacturaFilter) ([]model.Factura, error)
	GetFactura(ctx context.Context, id string) (*model.Factura, error)
	SaveFactura(ctx context.Context, factura model.Factura) (model.Factura, error)
	DeleteFactura(ctx context.Context, id string) (bool, error)
	FacturasDeCliente(ctx context.Context, clienteID string) ([]model.Factura, error)
}

type facturaService struct {
	store    *store.Store
	notifier Notifier
}

// NewFacturaService returns a FacturaService over the given store.
func NewFacturaService(st *store.Store, notifier Notifier) FacturaService {
	if notifier == nil {
		notifier = NoopNotifier
	}
	return &facturaService{store: st, notifier: notifier}
}

func (s *facturaService) ListFacturas(ctx context.Context, filter FacturaFilter) ([]model.Factura, error) {
	facturas, err := store.GetAll[model.Factura](s.store, model.ColFacturas)
	if err != nil {
		return nil, err
	}

	res := make([]model.Factura, 0, len(facturas))
	for _, f := range facturas {
		if filter.ClienteID != "" && f.ClienteID != filter.ClienteID {
			continue
		}
		if filter.Tipo != "" && f.Tipo != filter.Tipo {
			continue
		}
		if filter.EstadoPago != "" && f.EstadoPago != filter.EstadoPago {
			continue
		}
		res = append(res, f)
	}
	return res, nil
}

func (s *facturaService) GetFactura(ctx context.Context, id string) (*model.Factura, error) {
	return store.GetByID[model.Factura](s.store, model.ColFacturas, id)
}

func (s *facturaService) SaveFactura(ctx context.Context, factura model.Factura) (model.Factura, error) {
	if factura.ClienteID == "" {
		return model.Factura{}, fmt.Errorf("clienteId is required")
	}
	if factura.Tipo != model.FacturaEmitida && factura.Tipo != model.FacturaRecibida {
		return model.Factura{}, fmt.Errorf("tipo must be %q or %q", model.FacturaEmitida, model.FacturaRecibida)
	}
	if factura.BaseImponible.IsNegative() {
		return model.Factura{}, fmt.Errorf("baseImponible cannot be negative")
	}
	if factura.EstadoPago == "" {
		factura.EstadoPago = model.PagoPendiente
	}

	factura.Total = factura.CalcularTotal()

	saved, err := store.Save[model.Factura](s.store, model.ColFacturas, factura)
	if err != nil {
		return model.Factura{}, fmt.Errorf("failed to save factura: %w", err)
	}

	s.notifier.BroadcastChange(model.ColFacturas, AccionGuardado, saved.ID)
	return saved, nil
}

func (s *facturaService) DeleteFactura(ctx context.Context, id string) (bool, error) {
	removed, err := s.store.Remove(model.ColFacturas, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete factura: %w", err)
	}
	if removed {
		s.notifier.BroadcastChange(model.ColFacturas, AccionEliminado, id)
	}
	return removed, nil
}

func (s *facturaService) FacturasDeCliente(ctx context.Context, clienteID string) ([]model.Factura, error) {
	return s.store.FacturasDeCliente(clienteID)
}
