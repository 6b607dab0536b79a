package handler

import (
	"net/http"

	"github.com/aquihaydesarrollo/a-digital-central/internal/middleware"
	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/service"
	"github.com/aquihaydesarrollo/a-digital-central/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogoHandler exposes the service catalog. Reads are public so the
// storefront can render without a session; writes are admin only.
type CatalogoHandler struct {
	catalogoService service.CatalogoService
}

func NewCatalogoHandler(catalogoService service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{catalogoService: catalogoService}
}

func (h *CatalogoHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := middleware.RequireRole("admin")

	servicios := router.Group("/api/servicios")
	{
		servicios.GET("", h.ListServicios)
		servicios.GET("/:id", h.GetServicio)
		servicios.POST("", admin, h.SaveServicio)
		servicios.PUT("/:id", admin, h.UpdateServicio)
		servicios.DELETE("/:id", admin, h.DeleteServicio)
	}
}

// ListServicios returns the full service catalog
// @Summary      List catalog services
// @Tags         servicios
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/servicios [get]
func (h *CatalogoHandler) ListServicios(c *gin.Context) {
	servicios, err := h.catalogoService.ListServicios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, servicios))
}

// GetServicio returns a single catalog service
// @Summary      Get catalog service
// @Tags         servicios
// @Produce      json
// @Param        id  path  string  true  "Service ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/servicios/{id} [get]
func (h *CatalogoHandler) GetServicio(c *gin.Context) {
	servicio, err := h.catalogoService.GetServicio(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if servicio == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Servicio not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, servicio))
}

// SaveServicio creates a catalog service
// @Summary      Create catalog service
// @Tags         servicios
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.Servicio  true  "Service record"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/servicios [post]
func (h *CatalogoHandler) SaveServicio(c *gin.Context) {
	var servicio model.Servicio
	if err := c.ShouldBindJSON(&servicio); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	saved, err := h.catalogoService.SaveServicio(c.Request.Context(), servicio)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, saved))
}

// UpdateServicio upserts the catalog service at the given id
// @Summary      Update catalog service
// @Tags         servicios
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string          true  "Service ID"
// @Param        payload  body  model.Servicio  true  "Service record"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/servicios/{id} [put]
func (h *CatalogoHandler) UpdateServicio(c *gin.Context) {
	var servicio model.Servicio
	if err := c.ShouldBindJSON(&servicio); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	servicio.ID = c.Param("id")

	saved, err := h.catalogoService.SaveServicio(c.Request.Context(), servicio)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// DeleteServicio removes a catalog service
// @Summary      Delete catalog service
// @Tags         servicios
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Service ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/servicios/{id} [delete]
func (h *CatalogoHandler) DeleteServicio(c *gin.Context) {
	removed, err := h.catalogoService.DeleteServicio(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Servicio not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Servicio deleted successfully"}))
}
