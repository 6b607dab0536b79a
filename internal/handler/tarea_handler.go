package handler

import (
	"net/http"
	"time"

	"github.com/aquihaydesarrollo/a-digital-central/internal/middleware"
	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/service"
	"github.com/aquihaydesarrollo/a-digital-central/pkg/listquery"
	"github.com/aquihaydesarrollo/a-digital-central/pkg/response"

	"github.com/gin-gonic/gin"
)

const fechaLayout = "2006-01-02"

type TareaHandler struct {
	tareaService service.TareaService
}

func NewTareaHandler(tareaService service.TareaService) *TareaHandler {
	return &TareaHandler{tareaService: tareaService}
}

func (h *TareaHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := middleware.RequireRole("admin")

	router.GET("/api/clientes/:id/tareas", admin, h.ListByCliente)

	tareas := router.Group("/api/tareas", admin)
	{
		tareas.GET("", h.ListTareas)
		tareas.POST("", h.SaveTarea)
		tareas.GET("/pendientes", h.ListPendientes)
		tareas.GET("/calendario", h.Calendario)
		tareas.GET("/:id", h.GetTarea)
		tareas.PUT("/:id", h.UpdateTarea)
		tareas.DELETE("/:id", h.DeleteTarea)
	}
}

// ListTareas returns one page of tasks, optionally filtered
// @Summary      List tasks
// @Tags         tareas
// @Security     BearerAuth
// @Produce      json
// @Param        clienteId  query  string  false  "Filter by client"
// @Param        estado     query  string  false  "pendiente, en progreso or completada"
// @Param        prioridad  query  string  false  "baja, media, alta or urgente"
// @Param        page       query  int     false  "Page number"
// @Param        limit      query  int     false  "Items per page"
// @Success      200  {object}  response.Response
// @Router       /api/tareas [get]
func (h *TareaHandler) ListTareas(c *gin.Context) {
	filter := service.TareaFilter{
		ClienteID: c.Query("clienteId"),
		Estado:    c.Query("estado"),
		Prioridad: c.Query("prioridad"),
	}

	tareas, err := h.tareaService.ListTareas(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := listquery.Parse(c)
	page := listquery.Apply(tareas, params)
	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, page, response.ListMeta{
		Page:  params.Page,
		Limit: params.Limit,
		Total: len(tareas),
	}))
}

// ListPendientes returns open tasks ordered by deadline
// @Summary      List pending tasks
// @Tags         tareas
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/tareas/pendientes [get]
func (h *TareaHandler) ListPendientes(c *gin.Context) {
	tareas, err := h.tareaService.Pendientes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tareas))
}

// Calendario returns tasks with a deadline inside the requested window.
// Without parameters the window is the current month.
// @Summary      Task calendar
// @Tags         tareas
// @Security     BearerAuth
// @Produce      json
// @Param        desde  query  string  false  "Window start (YYYY-MM-DD, inclusive)"
// @Param        hasta  query  string  false  "Window end (YYYY-MM-DD, exclusive)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/tareas/calendario [get]
func (h *TareaHandler) Calendario(c *gin.Context) {
	now := time.Now().UTC()
	desde := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	hasta := desde.AddDate(0, 1, 0)

	var err error
	if v := c.Query("desde"); v != "" {
		if desde, err = time.Parse(fechaLayout, v); err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid desde date, expected YYYY-MM-DD"))
			return
		}
	}
	if v := c.Query("hasta"); v != "" {
		if hasta, err = time.Parse(fechaLayout, v); err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid hasta date, expected YYYY-MM-DD"))
			return
		}
	}

	tareas, err := h.tareaService.Calendario(c.Request.Context(), desde, hasta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tareas))
}

// ListByCliente returns every task of one client
// @Summary      List tasks of a client
// @Tags         tareas
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Client ID"
// @Success      200  {object}  response.Response
// @Router       /api/clientes/{id}/tareas [get]
func (h *TareaHandler) ListByCliente(c *gin.Context) {
	tareas, err := h.tareaService.TareasDeCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tareas))
}

// GetTarea returns a single task
// @Summary      Get task
// @Tags         tareas
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Task ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/tareas/{id} [get]
func (h *TareaHandler) GetTarea(c *gin.Context) {
	tarea, err := h.tareaService.GetTarea(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if tarea == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Tarea not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tarea))
}

// SaveTarea creates a task. Estado defaults to pendiente and prioridad
// to media when the payload omits them.
// @Summary      Create task
// @Tags         tareas
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.Tarea  true  "Task record"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/tareas [post]
func (h *TareaHandler) SaveTarea(c *gin.Context) {
	var tarea model.Tarea
	if err := c.ShouldBindJSON(&tarea); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	saved, err := h.tareaService.SaveTarea(c.Request.Context(), tarea)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, saved))
}

// UpdateTarea upserts the task at the given id
// @Summary      Update task
// @Tags         tareas
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string       true  "Task ID"
// @Param        payload  body  model.Tarea  true  "Task record"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/tareas/{id} [put]
func (h *TareaHandler) UpdateTarea(c *gin.Context) {
	var tarea model.Tarea
	if err := c.ShouldBindJSON(&tarea); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	tarea.ID = c.Param("id")

	saved, err := h.tareaService.SaveTarea(c.Request.Context(), tarea)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// DeleteTarea removes a task
// @Summary      Delete task
// @Tags         tareas
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Task ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/tareas/{id} [delete]
func (h *TareaHandler) DeleteTarea(c *gin.Context) {
	removed, err := h.tareaService.DeleteTarea(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Tarea not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Tarea deleted successfully"}))
}
