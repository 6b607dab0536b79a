package service

import (
	"context"
	"fmt"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"
)

// AddCarritoRequest is the payload for adding a catalog service to the cart.
type AddCarritoRequest struct {
	ServicioID string `json:"servicioId" binding:"required"`
	Cantidad   int    `json:"cantidad" binding:"required,min=1"`
}

// UpdateCarritoItemRequest sets the quantity of a cart line. Zero removes it.
type UpdateCarritoItemRequest struct {
	Cantidad int `json:"cantidad"`
}

// CarritoService manages the single current shopping cart. Every mutation
// returns the post-mutation cart so callers can render it without re-fetching.
type CarritoService interface {
	GetCarrito(ctx context.Context) (model.Carrito, error)
	AddItem(ctx context.Context, servicioID string, cantidad int) (model.Carrito, error)
	UpdateItem(ctx context.Context, itemID string, cantidad int) (model.Carrito, error)
	Clear(ctx context.Context) (model.Carrito, error)
}

type carritoService struct {
	store *store.Store
}

// NewCarritoService returns a CarritoService over the given store.
func NewCarritoService(st *store.Store) CarritoService {
	return &carritoService{store: st}
}

func (s *carritoService) GetCarrito(ctx context.Context) (model.Carrito, error) {
	return s.store.GetCarrito()
}

func (s *carritoService) AddItem(ctx context.Context, servicioID string, cantidad int) (model.Carrito, error) {
	if cantidad < 1 {
		return model.Carrito{}, fmt.Errorf("cantidad must be at least 1")
	}

	servicio, err := store.GetByID[model.Servicio](s.store, model.ColServicios, servicioID)
	if err != nil {
		return model.Carrito{}, err
	}
	if servicio == nil {
		return model.Carrito{}, fmt.Errorf("servicio %s not found", servicioID)
	}

	return s.store.AddToCarrito(*servicio, cantidad)
}

func (s *carritoService) UpdateItem(ctx context.Context, itemID string, cantidad int) (model.Carrito, error) {
	return s.store.UpdateCarritoItem(itemID, cantidad)
}

func (s *carritoService) Clear(ctx context.Context) (model.Carrito, error) {
	return s.store.ClearCarrito()
}
