package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aquihaydesarrollo/a-digital-central/internal/handler"
	"github.com/aquihaydesarrollo/a-digital-central/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogoService struct {
	servicios []model.Servicio
}

func (s *stubCatalogoService) ListServicios(ctx context.Context) ([]model.Servicio, error) {
	return s.servicios, nil
}

func (s *stubCatalogoService) GetServicio(ctx context.Context, id string) (*model.Servicio, error) {
	for i := range s.servicios {
		if s.servicios[i].ID == id {
			return &s.servicios[i], nil
		}
	}
	return nil, nil
}

func (s *stubCatalogoService) SaveServicio(ctx context.Context, servicio model.Servicio) (model.Servicio, error) {
	return servicio, nil
}

func (s *stubCatalogoService) DeleteServicio(ctx context.Context, id string) (bool, error) {
	return false, nil
}

func setupCatalogoRouter(stub *stubCatalogoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewCatalogoHandler(stub).RegisterRoutes(router.Group(""))
	return router
}

func TestListServiciosIsPublic(t *testing.T) {
	fiscal := model.Servicio{Nombre: "Asesoramiento Fiscal", Precio: decimal.NewFromInt(120)}
	fiscal.ID = "svc-1"
	router := setupCatalogoRouter(&stubCatalogoService{servicios: []model.Servicio{fiscal}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/servicios", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "catalog reads need no session")

	var body struct {
		Status string           `json:"status"`
		Data   []model.Servicio `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Asesoramiento Fiscal", body.Data[0].Nombre)
}

func TestGetServicioNotFound(t *testing.T) {
	router := setupCatalogoRouter(&stubCatalogoService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/servicios/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveServicioRequiresSession(t *testing.T) {
	router := setupCatalogoRouter(&stubCatalogoService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/servicios", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "catalog writes are admin only")
}
