package store

import (
	"encoding/json"
	"fmt"

	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
)

// GetCarrito returns the current cart, defaulting to an empty one when the
// slot is missing or unreadable.
func (s *Store) GetCarrito() (model.Carrito, error) {
	value, ok, err := s.kv.Get(model.KeyCarrito)
	if err != nil {
		return model.NuevoCarrito(), fmt.Errorf("read %s: %w", model.KeyCarrito, err)
	}
	if !ok {
		return model.NuevoCarrito(), nil
	}
	var c model.Carrito
	if err := json.Unmarshal([]byte(value), &c); err != nil {
		return model.NuevoCarrito(), nil
	}
	if c.Items == nil {
		c.Items = []model.ItemCarrito{}
	}
	return c, nil
}

// AddToCarrito adds cantidad units of the servicio to the cart. If an item for
// the same servicio already exists its quantity is incremented; otherwise a
// new item is appended with the catalog price snapshotted at add time, so
// later price changes never touch items already in the cart.
func (s *Store) AddToCarrito(servicio model.Servicio, cantidad int) (model.Carrito, error) {
	carrito, err := s.GetCarrito()
	if err != nil {
		return carrito, err
	}

	for i := range carrito.Items {
		if carrito.Items[i].ServicioID == servicio.ID {
			carrito.Items[i].Cantidad += cantidad
			return s.saveCarrito(carrito)
		}
	}

	item := model.ItemCarrito{
		ServicioID: servicio.ID,
		Cantidad:   cantidad,
		Precio:     servicio.Precio,
	}
	item.ID = s.newID()
	carrito.Items = append(carrito.Items, item)
	return s.saveCarrito(carrito)
}

// UpdateCarritoItem sets the quantity of an item. A quantity of zero or less
// removes the item; an unknown item id leaves the cart untouched.
func (s *Store) UpdateCarritoItem(itemID string, cantidad int) (model.Carrito, error) {
	carrito, err := s.GetCarrito()
	if err != nil {
		return carrito, err
	}

	for i := range carrito.Items {
		if carrito.Items[i].ID != itemID {
			continue
		}
		if cantidad <= 0 {
			carrito.Items = append(carrito.Items[:i], carrito.Items[i+1:]...)
		} else {
			carrito.Items[i].Cantidad = cantidad
		}
		return s.saveCarrito(carrito)
	}

	return carrito, nil
}

// ClearCarrito resets the cart to empty and persists it.
func (s *Store) ClearCarrito() (model.Carrito, error) {
	return s.saveCarrito(model.NuevoCarrito())
}

// saveCarrito recomputes the total and persists the cart. The total is never
// trusted as stored; it is derived from the items on every write.
func (s *Store) saveCarrito(c model.Carrito) (model.Carrito, error) {
	c.Recalcular()
	if err := s.setJSON(model.KeyCarrito, c); err != nil {
		return c, err
	}
	return c, nil
}
