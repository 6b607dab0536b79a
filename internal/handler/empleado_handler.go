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

type EmpleadoHandler struct {
	empleadoService service.EmpleadoService
}

func NewEmpleadoHandler(empleadoService service.EmpleadoService) *EmpleadoHandler {
	return &EmpleadoHandler{empleadoService: empleadoService}
}

func (h *EmpleadoHandler) RegisterRoutes(router *gin.RouterGroup) {
	empleados := router.Group("/api/empleados", middleware.RequireRole("admin"))
	{
		empleados.GET("", h.ListEmpleados)
		empleados.POST("", h.SaveEmpleado)
		empleados.GET("/:id", h.GetEmpleado)
		empleados.PUT("/:id", h.UpdateEmpleado)
		empleados.DELETE("/:id", h.DeleteEmpleado)
	}
}

// ListEmpleados returns one page of firm staff
// @Summary      List staff
// @Tags         empleados
// @Security     BearerAuth
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Items per page"
// @Success      200  {object}  response.Response
// @Router       /api/empleados [get]
func (h *EmpleadoHandler) ListEmpleados(c *gin.Context) {
	empleados, err := h.empleadoService.ListEmpleados(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := listquery.Parse(c)
	page := listquery.Apply(empleados, params)
	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, page, response.ListMeta{
		Page:  params.Page,
		Limit: params.Limit,
		Total: len(empleados),
	}))
}

// GetEmpleado returns a single staff member
// @Summary      Get staff member
// @Tags         empleados
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Employee ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/empleados/{id} [get]
func (h *EmpleadoHandler) GetEmpleado(c *gin.Context) {
	empleado, err := h.empleadoService.GetEmpleado(c.Request.Context(), c.Param("id"))
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

// SaveEmpleado creates a staff member
// @Summary      Create staff member
// @Tags         empleados
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.Empleado  true  "Employee record"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/empleados [post]
func (h *EmpleadoHandler) SaveEmpleado(c *gin.Context) {
	var empleado model.Empleado
	if err := c.ShouldBindJSON(&empleado); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	saved, err := h.empleadoService.SaveEmpleado(c.Request.Context(), empleado)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, saved))
}

// UpdateEmpleado upserts the staff member at the given id
// @Summary      Update staff member
// @Tags         empleados
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string          true  "Employee ID"
// @Param        payload  body  model.Empleado  true  "Employee record"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/empleados/{id} [put]
func (h *EmpleadoHandler) UpdateEmpleado(c *gin.Context) {
	var empleado model.Empleado
	if err := c.ShouldBindJSON(&empleado); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	empleado.ID = c.Param("id")

	saved, err := h.empleadoService.SaveEmpleado(c.Request.Context(), empleado)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// DeleteEmpleado removes a staff member
// @Summary      Delete staff member
// @Tags         empleados
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Employee ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/empleados/{id} [delete]
func (h *EmpleadoHandler) DeleteEmpleado(c *gin.Context) {
	removed, err := h.empleadoService.DeleteEmpleado(c.Request.Context(), c.Param("id"))
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
