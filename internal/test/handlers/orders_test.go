package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saddleworks-backend/internal/catalog"
	"saddleworks-backend/internal/handlers"
	"saddleworks-backend/internal/models"
	"saddleworks-backend/internal/repository"
	"saddleworks-backend/internal/service"
	"saddleworks-backend/internal/uploads"
)

func newOrdersRouter(t *testing.T, seed ...models.Order) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uploadDir := t.TempDir()
	store, err := uploads.NewStore(uploadDir)
	require.NoError(t, err)

	repo := repository.NewMemoryOrderRepository(seed...)
	svc := service.NewOrderService(catalog.New(), repo)
	h := handlers.NewOrdersHandler(svc, store)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/orders", h.ListOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.POST("/orders", h.CreateOrder)
	api.PUT("/orders/:id/status", h.UpdateOrderStatus)
	return router, uploadDir
}

type testFile struct {
	name        string
	contentType string
	data        []byte
}

func orderForm(t *testing.T, fields map[string]string, file *testFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="fittingFile"; filename=%q`, file.name))
		header.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func postOrder(router *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/orders", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func countOrders(t *testing.T, router *gin.Engine) int {
	t.Helper()
	req, _ := http.NewRequest("GET", "/api/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	return len(orders)
}

func TestCreateOrder(t *testing.T) {
	router, _ := newOrdersRouter(t)

	body, contentType := orderForm(t, map[string]string{
		"customerName":  "Alice",
		"customerEmail": "a@x.com",
		"saddleId":      "1",
	}, nil)
	w := postOrder(router, body, contentType)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order created successfully", resp.Message)

	order := resp.Order
	require.NotNil(t, order)
	assert.Equal(t, 1, order.ID)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "SADDLE-"))
	assert.Equal(t, "Alice", order.CustomerName)
	assert.Equal(t, "a@x.com", order.CustomerEmail)
	assert.Equal(t, models.DefaultBikeShopName, order.BikeShopName)
	assert.Equal(t, "Racing Pro", order.Saddle.Name)
	assert.Nil(t, order.FittingFile)
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, 0, order.Progress)
	assert.Empty(t, order.Notes)
	assert.Contains(t, w.Body.String(), `"notes":[]`)
	assert.Equal(t, models.EstimatedLeadTime, order.EstimatedCompletion.Sub(order.OrderDate))
}

func TestCreateOrder_MissingFields(t *testing.T) {
	router, _ := newOrdersRouter(t)

	body, contentType := orderForm(t, map[string]string{
		"customerName": "Alice",
		"saddleId":     "1",
	}, nil)
	w := postOrder(router, body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Missing required fields"}`, w.Body.String())
	assert.Equal(t, 0, countOrders(t, router))
}

func TestCreateOrder_InvalidSaddle(t *testing.T) {
	router, _ := newOrdersRouter(t)

	body, contentType := orderForm(t, map[string]string{
		"customerName":  "Alice",
		"customerEmail": "a@x.com",
		"saddleId":      "99",
	}, nil)
	w := postOrder(router, body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid saddle selection"}`, w.Body.String())
	assert.Equal(t, 0, countOrders(t, router))
}

func TestCreateOrder_WithFittingFile(t *testing.T) {
	router, uploadDir := newOrdersRouter(t)

	body, contentType := orderForm(t, map[string]string{
		"customerName":        "Bob",
		"customerEmail":       "bob@shop.example",
		"saddleId":            "3",
		"bikeShopName":        "Hill Country Cycles",
		"specialRequirements": "Cutout channel",
	}, &testFile{
		name:        "fitting.pdf",
		contentType: "application/pdf",
		data:        []byte("%PDF-1.4 fake"),
	})
	w := postOrder(router, body, contentType)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	order := resp.Order
	require.NotNil(t, order)
	assert.Equal(t, "Hill Country Cycles", order.BikeShopName)
	assert.Equal(t, "Cutout channel", order.SpecialRequirements)
	assert.Equal(t, "Mountain Elite", order.Saddle.Name)

	require.NotNil(t, order.FittingFile)
	assert.True(t, strings.HasSuffix(*order.FittingFile, "-fitting.pdf"))

	stored, err := os.ReadFile(filepath.Join(uploadDir, *order.FittingFile))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(stored))
}

func TestCreateOrder_RejectsUnsupportedFileType(t *testing.T) {
	router, uploadDir := newOrdersRouter(t)

	body, contentType := orderForm(t, map[string]string{
		"customerName":  "Alice",
		"customerEmail": "a@x.com",
		"saddleId":      "1",
	}, &testFile{
		name:        "fitting.zip",
		contentType: "application/zip",
		data:        []byte("PK fake archive"),
	})
	w := postOrder(router, body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid file type")
	assert.Equal(t, 0, countOrders(t, router))

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateOrder_RejectsOversizeFile(t *testing.T) {
	router, _ := newOrdersRouter(t)

	body, contentType := orderForm(t, map[string]string{
		"customerName":  "Alice",
		"customerEmail": "a@x.com",
		"saddleId":      "1",
	}, &testFile{
		name:        "huge.pdf",
		contentType: "application/pdf",
		data:        bytes.Repeat([]byte("x"), uploads.MaxFileSize+1),
	})
	w := postOrder(router, body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"File too large. Maximum size is 10MB."}`, w.Body.String())
	assert.Equal(t, 0, countOrders(t, router))
}

func TestGetOrder(t *testing.T) {
	router, _ := newOrdersRouter(t, repository.DemoOrders()...)

	req, _ := http.NewRequest("GET", "/api/orders/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "Sarah Johnson", order.CustomerName)
	assert.Equal(t, "SADDLE-1703123456789", order.OrderNumber)
	assert.Len(t, order.Notes, 2)
}

func TestGetOrder_NotFound(t *testing.T) {
	router, _ := newOrdersRouter(t)

	req, _ := http.NewRequest("GET", "/api/orders/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Order not found"}`, w.Body.String())
}

func TestListOrders(t *testing.T) {
	router, _ := newOrdersRouter(t, repository.DemoOrders()...)
	assert.Equal(t, 1, countOrders(t, router))
}

func TestUpdateOrderStatus(t *testing.T) {
	router, _ := newOrdersRouter(t, repository.DemoOrders()...)

	req := httptest.NewRequest("PUT", "/api/orders/1/status",
		strings.NewReader(`{"status":"Completed","progress":100}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order updated successfully", resp.Message)
	require.NotNil(t, resp.Order)
	assert.Equal(t, models.StatusCompleted, resp.Order.Status)
	assert.Equal(t, 100, resp.Order.Progress)

	// No notes field supplied, so the existing notes stay untouched.
	require.Len(t, resp.Order.Notes, 2)
	assert.Equal(t, "Initial measurements received and analyzed", resp.Order.Notes[0].Text)
}

func TestUpdateOrderStatus_AppendsNotes(t *testing.T) {
	router, _ := newOrdersRouter(t, repository.DemoOrders()...)

	// Identical updates append distinct entries; note appends are not
	// idempotent.
	var last models.OrderResponse
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("PUT", "/api/orders/1/status",
			strings.NewReader(`{"notes":"Padding applied"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &last))
	}

	notes := last.Order.Notes
	require.Len(t, notes, 4)
	assert.Equal(t, "Padding applied", notes[2].Text)
	assert.Equal(t, "Padding applied", notes[3].Text)
	assert.NotEqual(t, notes[2].ID, notes[3].ID)

	// Status and progress untouched when not supplied.
	assert.Equal(t, models.StatusInProgress, last.Order.Status)
	assert.Equal(t, 55, last.Order.Progress)
}

func TestUpdateOrderStatus_UnknownOrder(t *testing.T) {
	router, _ := newOrdersRouter(t, repository.DemoOrders()...)

	req := httptest.NewRequest("PUT", "/api/orders/99/status",
		strings.NewReader(`{"status":"Completed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Order not found"}`, w.Body.String())
	assert.Equal(t, 1, countOrders(t, router))
}
