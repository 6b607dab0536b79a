package handler

import (
	"net/http"

	"github.com/aquihaydesarrollo/a-digital-central/internal/middleware"
	"github.com/aquihaydesarrollo/a-digital-central/internal/model"
	"github.com/aquihaydesarrollo/a-digital-central/internal/service"
	"github.com/aquihaydesarrollo/a-digital-central/pkg/response"

	"github.com/gin-gonic/gin"
)

type AsesoriaHandler struct {
	asesoriaService service.AsesoriaService
	resumenService  service.ResumenService
}

func NewAsesoriaHandler(asesoriaService service.AsesoriaService, resumenService service.ResumenService) *AsesoriaHandler {
	return &AsesoriaHandler{asesoriaService: asesoriaService, resumenService: resumenService}
}

func (h *AsesoriaHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := middleware.RequireRole("admin")

	router.GET("/api/asesoria", admin, h.GetAsesoria)
	router.PUT("/api/asesoria", admin, h.UpdateAsesoria)
	router.GET("/api/resumen", admin, h.GetResumen)
}

// GetAsesoria returns the firm profile
// @Summary      Get firm profile
// @Tags         asesoria
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/asesoria [get]
func (h *AsesoriaHandler) GetAsesoria(c *gin.Context) {
	asesoria, err := h.asesoriaService.GetAsesoria(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if asesoria == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Asesoria not configured"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, asesoria))
}

// UpdateAsesoria updates the firm profile. The profile id never changes.
// @Summary      Update firm profile
// @Tags         asesoria
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.Asesoria  true  "Firm profile"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/asesoria [put]
func (h *AsesoriaHandler) UpdateAsesoria(c *gin.Context) {
	var asesoria model.Asesoria
	if err := c.ShouldBindJSON(&asesoria); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	saved, err := h.asesoriaService.UpdateAsesoria(c.Request.Context(), asesoria)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// GetResumen returns the dashboard counters
// @Summary      Dashboard summary
// @Tags         asesoria
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/resumen [get]
func (h *AsesoriaHandler) GetResumen(c *gin.Context) {
	resumen, err := h.resumenService.GetResumen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, resumen))
}
