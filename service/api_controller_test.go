package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiocb86/gridflow/contracts"
	"github.com/jiocb86/gridflow/mocks"
)

func parseJSONBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestApiController_GetCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	get := func(controller contracts.ApiController) *httptest.ResponseRecorder {
		router := SetupRouter(controller)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/"+apiVersion+"/sheet1/A1", nil)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("returns cell value", func(t *testing.T) {
		sheets := mocks.NewSheetService(t)
		sheets.On("GetCell", "sheet1", "A1").Return(&contracts.CellResponse{Value: "10", Result: "10"}, nil)

		controller := NewApiController(sheets, nil)
		w := get(controller)
		response := parseJSONBody(t, w)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "10", response["value"])
		assert.Equal(t, "10", response["result"])
	})

	t.Run("cell not found", func(t *testing.T) {
		sheets := mocks.NewSheetService(t)
		sheets.On("GetCell", "sheet1", "A1").Return(nil, contracts.ErrCellNotFound)

		controller := NewApiController(sheets, nil)
		w := get(controller)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("sheet not found", func(t *testing.T) {
		sheets := mocks.NewSheetService(t)
		sheets.On("GetCell", "sheet1", "A1").Return(nil, contracts.ErrSheetNotFound)

		controller := NewApiController(sheets, nil)
		w := get(controller)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid cell id", func(t *testing.T) {
		sheets := mocks.NewSheetService(t)
		sheets.On("GetCell", "sheet1", "A1").Return(nil, contracts.ErrInvalidCellID)

		controller := NewApiController(sheets, nil)
		w := get(controller)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		sheets := mocks.NewSheetService(t)
		sheets.On("GetCell", "sheet1", "A1").Return(nil, errors.New("boom"))

		controller := NewApiController(sheets, nil)
		w := get(controller)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestApiController_SetCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(controller contracts.ApiController, body string) *httptest.ResponseRecorder {
		router := SetupRouter(controller)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/"+apiVersion+"/sheet1/A1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("created on success", func(t *testing.T) {
		sheets := mocks.NewSheetService(t)
		sheets.On("SetCell", "sheet1", "A1", "=1+2").Return(&contracts.CellResponse{Value: "=1+2", Result: "3"}, nil)

		controller := NewApiController(sheets, nil)
		w := post(controller, `{"value":"=1+2"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		response := parseJSONBody(t, w)
		assert.Equal(t, "3", response["result"])
	})

	t.Run("unprocessable on circular dependency", func(t *testing.T) {
		sheets := mocks.NewSheetService(t)
		sheets.On("SetCell", "sheet1", "A1", "=B1").
			Return(&contracts.CellResponse{Value: "=B1", Result: "circular dependency"}, errors.New("circular dependency"))

		controller := NewApiController(sheets, nil)
		w := post(controller, `{"value":"=B1"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestApiController_GetSheetAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns cell list", func(t *testing.T) {
		sheets := mocks.NewSheetService(t)
		sheets.On("GetCellList", "sheet1").Return(contracts.CellList{
			"A1": {Value: "1", Result: "1"},
		}, nil)

		controller := NewApiController(sheets, nil)
		router := SetupRouter(controller)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/"+apiVersion+"/sheet1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("sheet not found", func(t *testing.T) {
		sheets := mocks.NewSheetService(t)
		sheets.On("GetCellList", "sheet1").Return(nil, contracts.ErrSheetNotFound)

		controller := NewApiController(sheets, nil)
		router := SetupRouter(controller)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/"+apiVersion+"/sheet1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApiController_SubscribeAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dispatcher := mocks.NewWebhookDispatcher(t)
	dispatcher.On("SetWebhookURL", "sheet1", "A1", "https://example.com/hook").Return(nil)

	controller := NewApiController(nil, dispatcher)
	router := SetupRouter(controller)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/"+apiVersion+"/sheet1/A1/"+subscribePath, bytes.NewBufferString(`{"webhook_url":"https://example.com/hook"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
