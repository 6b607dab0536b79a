package service_test

import (
	"context"
	"testing"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/service"
	"github.com/aquihaydesarrollo/a-digital-central/internal/storage"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFacturaRecomputesTotal(t *testing.T) {
	st := store.New(storage.NewMemory())
	svc := service.NewFacturaService(st, nil)

	factura := model.Factura{
		ClienteID:     "c1",
		Tipo:          model.FacturaEmitida,
		BaseImponible: decimal.NewFromInt(1000),
		IVA:           decimal.NewFromInt(21),
		Total:         decimal.NewFromInt(1), // caller-supplied total is discarded
	}

	saved, err := svc.SaveFactura(context.Background(), factura)
	require.NoError(t, err)
	assert.True(t, saved.Total.Equal(decimal.NewFromInt(1210)), "total is base plus 21%% VAT, got %s", saved.Total)
	assert.Equal(t, model.PagoPendiente, saved.EstadoPago, "estadoPago defaults to pendiente")
}

func TestSaveFacturaValidation(t *testing.T) {
	st := store.New(storage.NewMemory())
	svc := service.NewFacturaService(st, nil)
	ctx := context.Background()

	_, err := svc.SaveFactura(ctx, model.Factura{Tipo: model.FacturaEmitida})
	assert.Error(t, err, "clienteId is required")

	_, err = svc.SaveFactura(ctx, model.Factura{ClienteID: "c1", Tipo: "interna"})
	assert.Error(t, err, "tipo must be emitida or recibida")

	_, err = svc.SaveFactura(ctx, model.Factura{
		ClienteID:     "c1",
		Tipo:          model.FacturaRecibida,
		BaseImponible: decimal.NewFromInt(-10),
	})
	assert.Error(t, err, "negative base is rejected")
}

func TestListFacturasFilter(t *testing.T) {
	st := store.New(storage.NewMemory())
	svc := service.NewFacturaService(st, nil)
	ctx := context.Background()

	seed := []model.Factura{
		{ClienteID: "c1", Tipo: model.FacturaEmitida, BaseImponible: decimal.NewFromInt(100)},
		{ClienteID: "c1", Tipo: model.FacturaRecibida, BaseImponible: decimal.NewFromInt(200), EstadoPago: model.PagoPagada},
		{ClienteID: "c2", Tipo: model.FacturaEmitida, BaseImponible: decimal.NewFromInt(300)},
	}
	for _, f := range seed {
		_, err := svc.SaveFactura(ctx, f)
		require.NoError(t, err)
	}

	all, err := svc.ListFacturas(ctx, service.FacturaFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	deC1, err := svc.ListFacturas(ctx, service.FacturaFilter{ClienteID: "c1"})
	require.NoError(t, err)
	assert.Len(t, deC1, 2)

	pagadas, err := svc.ListFacturas(ctx, service.FacturaFilter{EstadoPago: model.PagoPagada})
	require.NoError(t, err)
	require.Len(t, pagadas, 1)
	assert.Equal(t, "c1", pagadas[0].ClienteID)

	emitidasC2, err := svc.ListFacturas(ctx, service.FacturaFilter{ClienteID: "c2", Tipo: model.FacturaEmitida})
	require.NoError(t, err)
	assert.Len(t, emitidasC2, 1)
}
