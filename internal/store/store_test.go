package store_test

import (
	"errors"
	"testing"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/storage"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKV wraps a Memory backend and fails writes on demand.
type failingKV struct {
	*storage.Memory
	failSet bool
}

func (f *failingKV) Set(key, value string) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.Memory.Set(key, value)
}

func TestSaveAssignsIDOnInsert(t *testing.T) {
	st := store.New(storage.NewMemory())

	saved, err := store.Save[model.Cliente](st, model.ColClientes, model.Cliente{Nombre: "Acme"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID, "insert should assign a fresh id")
	assert.Equal(t, "Acme", saved.Nombre)

	clientes, err := store.GetAll[model.Cliente](st, model.ColClientes)
	require.NoError(t, err)
	require.Len(t, clientes, 1)
	assert.Equal(t, saved.ID, clientes[0].ID)
}

func TestSaveReplacesExistingRecord(t *testing.T) {
	st := store.New(storage.NewMemory())

	saved, err := store.Save[model.Cliente](st, model.ColClientes, model.Cliente{Nombre: "Acme"})
	require.NoError(t, err)

	saved.Nombre = "Acme S.L."
	updated, err := store.Save[model.Cliente](st, model.ColClientes, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	clientes, err := store.GetAll[model.Cliente](st, model.ColClientes)
	require.NoError(t, err)
	require.Len(t, clientes, 1, "saving the same id twice must not duplicate")
	assert.Equal(t, "Acme S.L.", clientes[0].Nombre)
}

func TestSaveKeepsCallerIDWhenUnmatched(t *testing.T) {
	st := store.New(storage.NewMemory())

	cliente := model.Cliente{Nombre: "Importado"}
	cliente.ID = "cliente-importado-1"

	saved, err := store.Save[model.Cliente](st, model.ColClientes, cliente)
	require.NoError(t, err)
	assert.Equal(t, "cliente-importado-1", saved.ID)

	got, err := store.GetByID[model.Cliente](st, model.ColClientes, "cliente-importado-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Importado", got.Nombre)
}

func TestGetByIDAbsentIsNotAnError(t *testing.T) {
	st := store.New(storage.NewMemory())

	got, err := store.GetByID[model.Cliente](st, model.ColClientes, "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetAllMissingCollectionReadsEmpty(t *testing.T) {
	st := store.New(storage.NewMemory())

	clientes, err := store.GetAll[model.Cliente](st, model.ColClientes)
	assert.NoError(t, err)
	assert.Empty(t, clientes)
}

func TestGetAllCorruptCollectionReadsEmpty(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(model.ColClientes, "{not json"))
	st := store.New(kv)

	clientes, err := store.GetAll[model.Cliente](st, model.ColClientes)
	assert.NoError(t, err, "corrupt data must not surface as an error")
	assert.Empty(t, clientes)
}

func TestRemove(t *testing.T) {
	st := store.New(storage.NewMemory())

	a, err := store.Save[model.Cliente](st, model.ColClientes, model.Cliente{Nombre: "A"})
	require.NoError(t, err)
	b, err := store.Save[model.Cliente](st, model.ColClientes, model.Cliente{Nombre: "B"})
	require.NoError(t, err)

	removed, err := st.Remove(model.ColClientes, a.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = st.Remove(model.ColClientes, a.ID)
	require.NoError(t, err)
	assert.False(t, removed, "removing an absent id reports false, not an error")

	clientes, err := store.GetAll[model.Cliente](st, model.ColClientes)
	require.NoError(t, err)
	require.Len(t, clientes, 1)
	assert.Equal(t, b.ID, clientes[0].ID)
}

func TestSaveWriteFailurePropagates(t *testing.T) {
	kv := &failingKV{Memory: storage.NewMemory(), failSet: true}
	st := store.New(kv)

	_, err := store.Save[model.Cliente](st, model.ColClientes, model.Cliente{Nombre: "Acme"})
	require.Error(t, err, "a failed write must never look like a confirmed save")

	kv.failSet = false
	clientes, err := store.GetAll[model.Cliente](st, model.ColClientes)
	require.NoError(t, err)
	assert.Empty(t, clientes)
}
