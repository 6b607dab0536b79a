package storage_test

import (
	"testing"

	"github.com/aquihaydesarrollo/a-digital-central/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetDelete(t *testing.T) {
	kv := storage.NewMemory()

	_, ok, err := kv.Get("clientes")
	require.NoError(t, err)
	assert.False(t, ok, "missing key reads as absent, not as an error")

	require.NoError(t, kv.Set("clientes", `[{"id":"1"}]`))

	v, ok, err := kv.Get("clientes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)

	require.NoError(t, kv.Set("clientes", `[]`))
	v, _, err = kv.Get("clientes")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v, "set overwrites")

	require.NoError(t, kv.Delete("clientes"))
	_, ok, err = kv.Get("clientes")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, kv.Delete("clientes"), "deleting an absent key is a no-op")
}
