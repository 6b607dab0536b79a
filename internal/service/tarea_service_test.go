package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/service"
	"github.com/aquihaydesarrollo/a-digital-central/internal/storage"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fecha(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestSaveTareaDefaults(t *testing.T) {
	st := store.New(storage.NewMemory())
	svc := service.NewTareaService(st, nil)

	saved, err := svc.SaveTarea(context.Background(), model.Tarea{
		ClienteID:   "c1",
		Descripcion: "Presentar modelo 303",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TareaPendiente, saved.Estado)
	assert.Equal(t, model.PrioridadMedia, saved.Prioridad)
}

func TestSaveTareaRejectsUnknownEstado(t *testing.T) {
	st := store.New(storage.NewMemory())
	svc := service.NewTareaService(st, nil)

	_, err := svc.SaveTarea(context.Background(), model.Tarea{
		ClienteID:   "c1",
		Descripcion: "Presentar modelo 303",
		Estado:      "archivada",
	})
	assert.Error(t, err)

	_, err = svc.SaveTarea(context.Background(), model.Tarea{
		ClienteID:   "c1",
		Descripcion: "Presentar modelo 303",
		Prioridad:   "extrema",
	})
	assert.Error(t, err)
}

func TestPendientesExcludesCompletedAndSortsByDeadline(t *testing.T) {
	st := store.New(storage.NewMemory())
	svc := service.NewTareaService(st, nil)
	ctx := context.Background()

	seed := []model.Tarea{
		{ClienteID: "c1", Descripcion: "tardía", FechaLimite: fecha(20)},
		{ClienteID: "c1", Descripcion: "hecha", FechaLimite: fecha(5), Estado: model.TareaCompletada},
		{ClienteID: "c1", Descripcion: "urgente", FechaLimite: fecha(2), Estado: model.TareaEnProgreso},
		{ClienteID: "c2", Descripcion: "media", FechaLimite: fecha(10)},
	}
	for _, tarea := range seed {
		_, err := svc.SaveTarea(ctx, tarea)
		require.NoError(t, err)
	}

	pendientes, err := svc.Pendientes(ctx)
	require.NoError(t, err)
	require.Len(t, pendientes, 3)
	assert.Equal(t, "urgente", pendientes[0].Descripcion)
	assert.Equal(t, "media", pendientes[1].Descripcion)
	assert.Equal(t, "tardía", pendientes[2].Descripcion)
}

func TestCalendarioWindowIsHalfOpen(t *testing.T) {
	st := store.New(storage.NewMemory())
	svc := service.NewTareaService(st, nil)
	ctx := context.Background()

	for _, day := range []int{1, 10, 15, 31} {
		_, err := svc.SaveTarea(ctx, model.Tarea{
			ClienteID:   "c1",
			Descripcion: "tarea",
			FechaLimite: fecha(day),
		})
		require.NoError(t, err)
	}

	tareas, err := svc.Calendario(ctx, fecha(10), fecha(31))
	require.NoError(t, err)
	require.Len(t, tareas, 2, "start inclusive, end exclusive")
	assert.True(t, tareas[0].FechaLimite.Equal(fecha(10)))
	assert.True(t, tareas[1].FechaLimite.Equal(fecha(15)))
}
