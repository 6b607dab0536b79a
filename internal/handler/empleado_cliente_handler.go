package handler

import (
	"net/http"

	"github.com/aquihaydesarrollo/a-digital-central/internal/middleware"
	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/service"
	"github.com/aquihaydesarrollo/a-digital-central/pkg/response"

	"github.com/gin-gonic/gin"
)

// EmpleadoClienteHandler manages client payroll staff. These are the
// employees on a client's books, not the firm's own staff.
type EmpleadoClienteHandler struct {
	empleadoClienteService service.EmpleadoClienteService
}

func NewEmpleadoClienteHandler(empleadoClienteService service.EmpleadoClienteService) *EmpleadoClienteHandler {
	return &EmpleadoClienteHandler{empleadoClienteService: empleadoClienteService}
}

func (h *EmpleadoClienteHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := middleware.RequireRole("admin")

	router.GET("/api/clientes/:id/empleados", admin, h.ListByCliente)
	router.POST("/api/clientes/:id/empleados", admin, h.SaveForCliente)

	empleados := router.Group("/api/empleados-cliente", admin)
	{
		empleados.GET("/:id", h.GetEmpleadoCliente)
		empleados.PUT("/:id", h.UpdateEmpleadoCliente)
		empleados.DELETE("/:id", h.DeleteEmpleadoCliente)
	}
}

// ListByCliente returns the payroll staff of one client
// @Summary      List client payroll staff
// @Tags         empleados-cliente
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Client ID"
// @Success      200  {object}  response.Response
// @Router       /api/clientes/{id}/empleados [get]
func (h *EmpleadoClienteHandler) ListByCliente(c *gin.Context) {
	empleados, err := h.empleadoClienteService.ListByCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, empleados))
}

// SaveForCliente adds a payroll employee under the client in the path
// @Summary      Create client payroll employee
// @Tags         empleados-cliente
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                 true  "Client ID"
// @Param        payload  body  model.EmpleadoCliente  true  "Payroll employee record"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/clientes/{id}/empleados [post]
func (h *EmpleadoClienteHandler) SaveForCliente(c *gin.Context) {
	var empleado model.EmpleadoCliente
	if err := c.ShouldBindJSON(&empleado); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	empleado.ClienteID = c.Param("id")

	saved, err := h.empleadoClienteService.SaveEmpleadoCliente(c.Request.Context(), empleado)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, saved))
}

// GetEmpleadoCliente returns a single payroll employee
// @Summary      Get client payroll employee
// @Tags         empleados-cliente
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Payroll employee ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/empleados-cliente/{id} [get]
func (h *EmpleadoClienteHandler) GetEmpleadoCliente(c *gin.Context) {
	empleado, err := h.empleadoClienteService.GetEmpleadoCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if empleado == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Empleado not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, empleado))
}

// UpdateEmpleadoCliente upserts the payroll employee at the given id
// @Summary      Update client payroll employee
// @Tags         empleados-cliente
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                 true  "Payroll employee ID"
// @Param        payload  body  model.EmpleadoCliente  true  "Payroll employee record"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/empleados-cliente/{id} [put]
func (h *EmpleadoClienteHandler) UpdateEmpleadoCliente(c *gin.Context) {
	var empleado model.EmpleadoCliente
	if err := c.ShouldBindJSON(&empleado); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	empleado.ID = c.Param("id")

	saved, err := h.empleadoClienteService.SaveEmpleadoCliente(c.Request.Context(), empleado)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// DeleteEmpleadoCliente removes a payroll employee
// @Summary      Delete client payroll employee
// @Tags         empleados-cliente
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Payroll employee ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/empleados-cliente/{id} [delete]
func (h *EmpleadoClienteHandler) DeleteEmpleadoCliente(c *gin.Context) {
	removed, err := h.empleadoClienteService.DeleteEmpleadoCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Empleado not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Empleado deleted successfully"}))
}
