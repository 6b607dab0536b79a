package handler

import (
	"net/http"

	"github.com/aquihaydesarrollo/a-digital-central/internal/service"
	"github.com/aquihaydesarrollo/a-digital-central/pkg/response"

	"github.com/gin-gonic/gin"
)

// CarritoHandler exposes the contracting cart. Cart routes are public,
// matching the storefront flow where visitors pick services before any
// contact with the firm.
type CarritoHandler struct {
	carritoService service.CarritoService
}

func NewCarritoHandler(carritoService service.CarritoService) *CarritoHandler {
	return &CarritoHandler{carritoService: carritoService}
}

func (h *CarritoHandler) RegisterRoutes(router *gin.RouterGroup) {
	carrito := router.Group("/api/carrito")
	{
		carrito.GET("", h.GetCarrito)
		carrito.DELETE("", h.ClearCarrito)
		carrito.POST("/items", h.AddItem)
		carrito.PUT("/items/:id", h.UpdateItem)
		carrito.DELETE("/items/:id", h.RemoveItem)
	}
}

// GetCarrito returns the cart with its current total
// @Summary      Get cart
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/carrito [get]
func (h *CarritoHandler) GetCarrito(c *gin.Context) {
	carrito, err := h.carritoService.GetCarrito(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, carrito))
}

// AddItem adds a catalog service to the cart. Adding a service already in
// the cart merges quantities onto the existing line.
// @Summary      Add cart item
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        payload  body  service.AddCarritoRequest  true  "Service and quantity"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/carrito/items [post]
func (h *CarritoHandler) AddItem(c *gin.Context) {
	var req service.AddCarritoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	carrito, err := h.carritoService.AddItem(c.Request.Context(), req.ServicioID, req.Cantidad)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, carrito))
}

// UpdateItem sets a cart line's quantity. Zero or negative removes the line.
// @Summary      Update cart item quantity
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        id       path  string                            true  "Cart item ID"
// @Param        payload  body  service.UpdateCarritoItemRequest  true  "New quantity"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/carrito/items/{id} [put]
func (h *CarritoHandler) UpdateItem(c *gin.Context) {
	var req service.UpdateCarritoItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	carrito, err := h.carritoService.UpdateItem(c.Request.Context(), c.Param("id"), req.Cantidad)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, carrito))
}

// RemoveItem deletes a cart line
// @Summary      Remove cart item
// @Tags         carrito
// @Produce      json
// @Param        id  path  string  true  "Cart item ID"
// @Success      200  {object}  response.Response
// @Router       /api/carrito/items/{id} [delete]
func (h *CarritoHandler) RemoveItem(c *gin.Context) {
	carrito, err := h.carritoService.UpdateItem(c.Request.Context(), c.Param("id"), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, carrito))
}

// ClearCarrito empties the cart
// @Summary      Clear cart
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/carrito [delete]
func (h *CarritoHandler) ClearCarrito(c *gin.Context) {
	carrito, err := h.carritoService.Clear(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, carrito))
}
