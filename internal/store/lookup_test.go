package store_test

import (
	"testing"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/storage"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacturasDeCliente(t *testing.T) {
	st := store.New(storage.NewMemory())

	mia, err := store.Save[model.Factura](st, model.ColFacturas, model.Factura{ClienteID: "c1", Tipo: model.FacturaEmitida})
	require.NoError(t, err)
	_, err = store.Save[model.Factura](st, model.ColFacturas, model.Factura{ClienteID: "c2", Tipo: model.FacturaEmitida})
	require.NoError(t, err)

	facturas, err := st.FacturasDeCliente("c1")
	require.NoError(t, err)
	require.Len(t, facturas, 1)
	assert.Equal(t, mia.ID, facturas[0].ID)
}

func TestLookupsWithDanglingForeignKeyAreEmpty(t *testing.T) {
	st := store.New(storage.NewMemory())

	_, err := store.Save[model.Tarea](st, model.ColTareas, model.Tarea{ClienteID: "c1", Descripcion: "IVA"})
	require.NoError(t, err)

	tareas, err := st.TareasDeCliente("cliente-borrado")
	require.NoError(t, err)
	assert.Empty(t, tareas)

	documentos, err := st.DocumentosDeCliente("cliente-borrado")
	require.NoError(t, err)
	assert.Empty(t, documentos)

	empleados, err := st.EmpleadosDeCliente("cliente-borrado")
	require.NoError(t, err)
	assert.Empty(t, empleados)
}

func TestClientesDeAsesoria(t *testing.T) {
	st := store.New(storage.NewMemory())

	_, err := store.Save[model.Cliente](st, model.ColClientes, model.Cliente{AsesoriaID: "a1", Nombre: "Uno"})
	require.NoError(t, err)
	_, err = store.Save[model.Cliente](st, model.ColClientes, model.Cliente{AsesoriaID: "a1", Nombre: "Dos"})
	require.NoError(t, err)
	_, err = store.Save[model.Cliente](st, model.ColClientes, model.Cliente{AsesoriaID: "otra", Nombre: "Tres"})
	require.NoError(t, err)

	clientes, err := st.ClientesDeAsesoria("a1")
	require.NoError(t, err)
	assert.Len(t, clientes, 2)
}
