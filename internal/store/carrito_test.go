package store_test

import (
	"testing"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/storage"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servicioDePrueba(t *testing.T, st *store.Store, nombre string, precio int64) model.Servicio {
	t.Helper()
	s, err := store.Save[model.Servicio](st, model.ColServicios, model.Servicio{
		Nombre: nombre,
		Precio: decimal.NewFromInt(precio),
	})
	require.NoError(t, err)
	return s
}

func TestAddToCarritoMergesSameServicio(t *testing.T) {
	st := store.New(storage.NewMemory())
	fiscal := servicioDePrueba(t, st, "Asesoramiento Fiscal", 120)

	carrito, err := st.AddToCarrito(fiscal, 1)
	require.NoError(t, err)
	require.Len(t, carrito.Items, 1)

	carrito, err = st.AddToCarrito(fiscal, 2)
	require.NoError(t, err)
	require.Len(t, carrito.Items, 1, "same service must merge onto the existing line")
	assert.Equal(t, 3, carrito.Items[0].Cantidad)
	assert.True(t, carrito.Total.Equal(decimal.NewFromInt(360)), "total is 3 x 120, got %s", carrito.Total)
}

func TestCarritoTotalAlwaysMatchesItems(t *testing.T) {
	st := store.New(storage.NewMemory())
	fiscal := servicioDePrueba(t, st, "Asesoramiento Fiscal", 120)
	nominas := servicioDePrueba(t, st, "Nóminas", 80)

	carrito, err := st.AddToCarrito(fiscal, 2)
	require.NoError(t, err)
	carrito, err = st.AddToCarrito(nominas, 1)
	require.NoError(t, err)
	assert.True(t, carrito.Total.Equal(decimal.NewFromInt(320)))

	carrito, err = st.UpdateCarritoItem(carrito.Items[0].ID, 1)
	require.NoError(t, err)
	assert.True(t, carrito.Total.Equal(decimal.NewFromInt(200)))
}

func TestUpdateCarritoItemZeroRemovesLine(t *testing.T) {
	st := store.New(storage.NewMemory())
	fiscal := servicioDePrueba(t, st, "Asesoramiento Fiscal", 120)

	carrito, err := st.AddToCarrito(fiscal, 2)
	require.NoError(t, err)
	require.Len(t, carrito.Items, 1)

	carrito, err = st.UpdateCarritoItem(carrito.Items[0].ID, 0)
	require.NoError(t, err)
	assert.Empty(t, carrito.Items)
	assert.True(t, carrito.Total.IsZero())
}

func TestUpdateCarritoItemUnknownIDIsNoOp(t *testing.T) {
	st := store.New(storage.NewMemory())
	fiscal := servicioDePrueba(t, st, "Asesoramiento Fiscal", 120)

	carrito, err := st.AddToCarrito(fiscal, 1)
	require.NoError(t, err)

	after, err := st.UpdateCarritoItem("no-such-item", 5)
	require.NoError(t, err)
	require.Len(t, after.Items, 1)
	assert.Equal(t, carrito.Items[0].ID, after.Items[0].ID)
	assert.Equal(t, 1, after.Items[0].Cantidad)
	assert.True(t, after.Total.Equal(carrito.Total))
}

func TestCarritoSnapshotsPriceAtAddTime(t *testing.T) {
	st := store.New(storage.NewMemory())
	fiscal := servicioDePrueba(t, st, "Asesoramiento Fiscal", 120)

	carrito, err := st.AddToCarrito(fiscal, 1)
	require.NoError(t, err)

	// Catalog price change after the item is in the cart.
	fiscal.Precio = decimal.NewFromInt(999)
	_, err = store.Save[model.Servicio](st, model.ColServicios, fiscal)
	require.NoError(t, err)

	carrito, err = st.GetCarrito()
	require.NoError(t, err)
	require.Len(t, carrito.Items, 1)
	assert.True(t, carrito.Items[0].Precio.Equal(decimal.NewFromInt(120)))
	assert.True(t, carrito.Total.Equal(decimal.NewFromInt(120)))
}

func TestClearCarrito(t *testing.T) {
	st := store.New(storage.NewMemory())
	fiscal := servicioDePrueba(t, st, "Asesoramiento Fiscal", 120)

	_, err := st.AddToCarrito(fiscal, 3)
	require.NoError(t, err)

	carrito, err := st.ClearCarrito()
	require.NoError(t, err)
	assert.Empty(t, carrito.Items)
	assert.True(t, carrito.Total.IsZero())

	carrito, err = st.GetCarrito()
	require.NoError(t, err)
	assert.Empty(t, carrito.Items)
}
