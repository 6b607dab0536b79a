package handler

import (
	"net/http"

	"github.com/aquihaydesarrollo/a-digital-central/internal/middleware"
	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/service"
	"github.com/aquihaydesarrollo/a-digital-central/pkg/listquery"
	"github.com/aquihaydesarrollo/a-digital-central/pkg/response"

	"github.com/gin-gonic/gin"
)

type FacturaHandler struct {
	facturaService service.FacturaService
}

func NewFacturaHandler(facturaService service.FacturaService) *FacturaHandler {
	return &FacturaHandler{facturaService: facturaService}
}

func (h *FacturaHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := middleware.RequireRole("admin")

	router.GET("/api/clientes/:id/facturas", admin, h.ListByCliente)

	facturas := router.Group("/api/facturas", admin)
	{
		facturas.GET("", h.ListFacturas)
		facturas.POST("", h.SaveFactura)
		facturas.GET("/:id", h.GetFactura)
		facturas.PUT("/:id", h.UpdateFactura)
		facturas.DELETE("/:id", h.DeleteFactura)
	}
}

// ListFacturas returns one page of invoices, optionally filtered
// @Summary      List invoices
// @Tags         facturas
// @Security     BearerAuth
// @Produce      json
// @Param        clienteId   query  string  false  "Filter by client"
// @Param        tipo        query  string  false  "emitida or recibida"
// @Param        estadoPago  query  string  false  "pendiente or pagada"
// @Param        page        query  int     false  "Page number"
// @Param        limit       query  int     false  "Items per page"
// @Success      200  {object}  response.Response
// @Router       /api/facturas [get]
func (h *FacturaHandler) ListFacturas(c *gin.Context) {
	filter := service.FacturaFilter{
		ClienteID:  c.Query("clienteId"),
		Tipo:       c.Query("tipo"),
		EstadoPago: c.Query("estadoPago"),
	}

	facturas, err := h.facturaService.ListFacturas(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := listquery.Parse(c)
	page := listquery.Apply(facturas, params)
	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, page, response.ListMeta{
		Page:  params.Page,
		Limit: params.Limit,
		Total: len(facturas),
	}))
}

// ListByCliente returns every invoice of one client
// @Summary      List invoices of a client
// @Tags         facturas
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Client ID"
// @Success      200  {object}  response.Response
// @Router       /api/clientes/{id}/facturas [get]
func (h *FacturaHandler) ListByCliente(c *gin.Context) {
	facturas, err := h.facturaService.FacturasDeCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, facturas))
}

// GetFactura returns a single invoice
// @Summary      Get invoice
// @Tags         facturas
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/facturas/{id} [get]
func (h *FacturaHandler) GetFactura(c *gin.Context) {
	factura, err := h.facturaService.GetFactura(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if factura == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Factura not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, factura))
}

// SaveFactura creates an invoice. The total is always recomputed from the
// taxable base and VAT rate server side.
// @Summary      Create invoice
// @Tags         facturas
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.Factura  true  "Invoice record"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/facturas [post]
func (h *FacturaHandler) SaveFactura(c *gin.Context) {
	var factura model.Factura
	if err := c.ShouldBindJSON(&factura); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	saved, err := h.facturaService.SaveFactura(c.Request.Context(), factura)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, saved))
}

// UpdateFactura upserts the invoice at the given id
// @Summary      Update invoice
// @Tags         facturas
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string         true  "Invoice ID"
// @Param        payload  body  model.Factura  true  "Invoice record"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/facturas/{id} [put]
func (h *FacturaHandler) UpdateFactura(c *gin.Context) {
	var factura model.Factura
	if err := c.ShouldBindJSON(&factura); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	factura.ID = c.Param("id")

	saved, err := h.facturaService.SaveFactura(c.Request.Context(), factura)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// DeleteFactura removes an invoice
// @Summary      Delete invoice
// @Tags         facturas
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Invoice ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/facturas/{id} [delete]
func (h *FacturaHandler) DeleteFactura(c *gin.Context) {
	removed, err := h.facturaService.DeleteFactura(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Factura not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Factura deleted successfully"}))
}
