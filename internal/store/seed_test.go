package store_test

import (
	"testing"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/storage"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeSeedsOnce(t *testing.T) {
	st := store.New(storage.NewMemory())

	seeded, err := st.Initialize()
	require.NoError(t, err)
	assert.True(t, seeded)

	asesoria, err := st.GetAsesoria()
	require.NoError(t, err)
	require.NotNil(t, asesoria)
	assert.Equal(t, "Asesoría Fiscal & Contable S.L.", asesoria.Nombre)
	assert.Equal(t, "B12345678", asesoria.CIF)

	clientes, err := store.GetAll[model.Cliente](st, model.ColClientes)
	require.NoError(t, err)
	assert.Len(t, clientes, 3)
	for _, c := range clientes {
		assert.Equal(t, asesoria.ID, c.AsesoriaID)
	}

	servicios, err := store.GetAll[model.Servicio](st, model.ColServicios)
	require.NoError(t, err)
	assert.Len(t, servicios, 6)

	carrito, err := st.GetCarrito()
	require.NoError(t, err)
	assert.Empty(t, carrito.Items)
	assert.True(t, carrito.Total.IsZero())
}

func TestInitializeIsIdempotent(t *testing.T) {
	st := store.New(storage.NewMemory())

	seeded, err := st.Initialize()
	require.NoError(t, err)
	require.True(t, seeded)

	asesoria, err := st.GetAsesoria()
	require.NoError(t, err)
	require.NotNil(t, asesoria)

	// User data added after the first seed must survive a re-run.
	extra, err := store.Save[model.Cliente](st, model.ColClientes, model.Cliente{
		AsesoriaID: asesoria.ID,
		Nombre:     "Cliente Nuevo",
	})
	require.NoError(t, err)

	seeded, err = st.Initialize()
	require.NoError(t, err)
	assert.False(t, seeded)

	again, err := st.GetAsesoria()
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, asesoria.ID, again.ID, "firm id must be stable across restarts")

	clientes, err := store.GetAll[model.Cliente](st, model.ColClientes)
	require.NoError(t, err)
	assert.Len(t, clientes, 4)

	got, err := store.GetByID[model.Cliente](st, model.ColClientes, extra.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}
