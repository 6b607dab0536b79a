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

func TestAddItemRequiresExistingServicio(t *testing.T) {
	st := store.New(storage.NewMemory())
	svc := service.NewCarritoService(st)

	_, err := svc.AddItem(context.Background(), "no-such-service", 1)
	assert.Error(t, err)
}

func TestAddItemRejectsZeroQuantity(t *testing.T) {
	st := store.New(storage.NewMemory())
	svc := service.NewCarritoService(st)

	_, err := svc.AddItem(context.Background(), "whatever", 0)
	assert.Error(t, err)
}

func TestCarritoFlow(t *testing.T) {
	st := store.New(storage.NewMemory())
	ctx := context.Background()

	servicio, err := store.Save[model.Servicio](st, model.ColServicios, model.Servicio{
		Nombre: "Declaraciones Trimestrales",
		Precio: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	svc := service.NewCarritoService(st)

	carrito, err := svc.AddItem(ctx, servicio.ID, 2)
	require.NoError(t, err)
	require.Len(t, carrito.Items, 1)
	assert.True(t, carrito.Total.Equal(decimal.NewFromInt(200)))

	carrito, err = svc.UpdateItem(ctx, carrito.Items[0].ID, 5)
	require.NoError(t, err)
	assert.True(t, carrito.Total.Equal(decimal.NewFromInt(500)))

	carrito, err = svc.Clear(ctx)
	require.NoError(t, err)
	assert.Empty(t, carrito.Items)
	assert.True(t, carrito.Total.IsZero())
}
