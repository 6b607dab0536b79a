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

type DocumentoHandler struct {
	documentoService service.DocumentoService
}

func NewDocumentoHandler(documentoService service.DocumentoService) *DocumentoHandler {
	return &DocumentoHandler{documentoService: documentoService}
}

func (h *DocumentoHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := middleware.RequireRole("admin")

	router.GET("/api/clientes/:id/documentos", admin, h.ListByCliente)

	documentos := router.Group("/api/documentos", admin)
	{
		documentos.GET("", h.ListDocumentos)
		documentos.POST("", h.SaveDocumento)
		documentos.GET("/:id", h.GetDocumento)
		documentos.PUT("/:id", h.UpdateDocumento)
		documentos.DELETE("/:id", h.DeleteDocumento)
	}
}

// ListDocumentos returns one page of document records
// @Summary      List documents
// @Tags         documentos
// @Security     BearerAuth
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Items per page"
// @Success      200  {object}  response.Response
// @Router       /api/documentos [get]
func (h *DocumentoHandler) ListDocumentos(c *gin.Context) {
	documentos, err := h.documentoService.ListDocumentos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	params := listquery.Parse(c)
	page := listquery.Apply(documentos, params)
	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, page, response.ListMeta{
		Page:  params.Page,
		Limit: params.Limit,
		Total: len(documentos),
	}))
}

// ListByCliente returns every document of one client
// @Summary      List documents of a client
// @Tags         documentos
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Client ID"
// @Success      200  {object}  response.Response
// @Router       /api/clientes/{id}/documentos [get]
func (h *DocumentoHandler) ListByCliente(c *gin.Context) {
	documentos, err := h.documentoService.DocumentosDeCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, documentos))
}

// GetDocumento returns a single document record
// @Summary      Get document
// @Tags         documentos
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Document ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/documentos/{id} [get]
func (h *DocumentoHandler) GetDocumento(c *gin.Context) {
	documento, err := h.documentoService.GetDocumento(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if documento == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Documento not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, documento))
}

// SaveDocumento registers a document. Upload date and version default
// server side when the payload omits them.
// @Summary      Create document
// @Tags         documentos
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.Documento  true  "Document record"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/documentos [post]
func (h *DocumentoHandler) SaveDocumento(c *gin.Context) {
	var documento model.Documento
	if err := c.ShouldBindJSON(&documento); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	saved, err := h.documentoService.SaveDocumento(c.Request.Context(), documento)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, saved))
}

// UpdateDocumento upserts the document at the given id
// @Summary      Update document
// @Tags         documentos
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string           true  "Document ID"
// @Param        payload  body  model.Documento  true  "Document record"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/documentos/{id} [put]
func (h *DocumentoHandler) UpdateDocumento(c *gin.Context) {
	var documento model.Documento
	if err := c.ShouldBindJSON(&documento); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	documento.ID = c.Param("id")

	saved, err := h.documentoService.SaveDocumento(c.Request.Context(), documento)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, saved))
}

// DeleteDocumento removes a document record
// @Summary      Delete document
// @Tags         documentos
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Document ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/documentos/{id} [delete]
func (h *DocumentoHandler) DeleteDocumento(c *gin.Context) {
	removed, err := h.documentoService.DeleteDocumento(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Documento not found"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Documento deleted successfully"}))
}
