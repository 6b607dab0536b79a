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

type ClienteHandler struct {
	clienteService service.ClienteService
}

func NewClienteHandler(clienteService service.ClienteService) *ClienteHandler {
	return &ClienteHandler{clienteService: clienteService}
}

func (h *ClienteHandler) RegisterRoutes(router *gin.RouterGroup) {
	clientes := router.Group("/api/clientes", middleware.RequireRole("admin"))
	{
		clientes.GET("", h.ListClientes)
		clientes.POST("", h.SaveCliente)
		clientes.GET("/:id", h.GetCliente)
		clientes.PUT("/:id", h.UpdateCliente)
		clientes.DELETE("/:id", h.DeleteCliente)
	}
}

// ListClientes returns one page of clients
// @Summary      List clients
// @Tags         clientes
// @Security     BearerAuth
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Items per page"
// @Success      200  {object}  response.Response
// @Router       /api/clientes [get]
func (h *ClienteHandler) ListClientes(c *gin.Context) {
	clientes, err := h.clienteService.ListClientes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := listquery.Parse(c)
	page := listquery.Apply(clientes, params)
	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, page, response.ListMeta{
		Page:  params.Page,
		Limit: params.Limit,
		Total: len(clientes),
	}))
}

// GetCliente returns a single client
// @Summary      Get client
// @Tags         clientes
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Client ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) GetCliente(c *gin.Context) {
	cliente, err := h.clienteService.GetCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if cliente == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Cliente not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cliente))
}

// SaveCliente creates a client (or upserts when the payload carries an id)
// @Summary      Create client
// @Tags         clientes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.Cliente  true  "Client record"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/clientes [post]
func (h *ClienteHandler) SaveCliente(c *gin.Context) {
	var cliente model.Cliente
	if err := c.ShouldBindJSON(&cliente); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	saved, err := h.clienteService.SaveCliente(c.Request.Context(), cliente)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, saved))
}

// UpdateCliente upserts the client at the given id
// @Summary      Update client
// @Tags         clientes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string         true  "Client ID"
// @Param        payload  body  model.Cliente  true  "Client record"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) UpdateCliente(c *gin.Context) {
	var cliente model.Cliente
	if err := c.ShouldBindJSON(&cliente); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	cliente.ID = c.Param("id")

	saved, err := h.clienteService.SaveCliente(c.Request.Context(), cliente)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// DeleteCliente removes a client
// @Summary      Delete client
// @Tags         clientes
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Client ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) DeleteCliente(c *gin.Context) {
	removed, err := h.clienteService.DeleteCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Cliente not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Cliente deleted successfully"}))
}
