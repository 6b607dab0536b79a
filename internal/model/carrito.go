package model

import "github.com/shopspring/decimal"

// ItemCarrito is one line of the cart. Precio is the catalog price snapshotted
// when the item was added; later catalog changes do not touch it.
type ItemCarrito struct {
	Registro
	ServicioID string          `json:"servicioId"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
}

// Carrito is the single current pending order. Total always equals the sum of
// precio*cantidad over Items and is recomputed after every mutation.
type Carrito struct {
	Items []ItemCarrito   `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// NuevoCarrito returns an empty cart with a zero total.
func NuevoCarrito() Carrito {
	return Carrito{Items: []ItemCarrito{}, Total: decimal.Zero}
}

// Recalcular recomputes Total from the items.
func (c *Carrito) Recalcular() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))))
	}
	c.Total = total
}
