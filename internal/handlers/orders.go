package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"saddleworks-backend/internal/models"
	"saddleworks-backend/internal/repository"
	"saddleworks-backend/internal/service"
	"saddleworks-backend/internal/uploads"
)

type OrdersHandler struct {
	service *service.OrderService
	uploads *uploads.Store
}

func NewOrdersHandler(svc *service.OrderService, uploadStore *uploads.Store) *OrdersHandler {
	return &OrdersHandler{
		service: svc,
		uploads: uploadStore,
	}
}

// CreateOrder handles the multipart order form. The optional fitting file is
// validated and stored before field validation, matching the upload-first
// request flow the client depends on.
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	// Form fields are validated by the service; a bind failure just leaves
	// them empty.
	_ = c.ShouldBind(&req)

	var fittingFile *string
	if fh, err := c.FormFile("fittingFile"); err == nil && fh != nil {
		name, err := h.uploads.Save(fh)
		switch {
		case errors.Is(err, uploads.ErrFileTooLarge):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Message: "File too large. Maximum size is 10MB.",
			})
			return
		case errors.Is(err, uploads.ErrUnsupportedType):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Message: "Invalid file type. Please upload PDF, image, or spreadsheet files.",
			})
			return
		case err != nil:
			log.WithError(err).Error("failed to store fitting file")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Message: "Error creating order",
				Error:   err.Error(),
			})
			return
		}
		fittingFile = &name
	}

	order, err := h.service.CreateOrder(service.CreateOrderInput{
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		SaddleID:            req.SaddleID,
		BikeShopName:        req.BikeShopName,
		SpecialRequirements: req.SpecialRequirements,
		FittingFile:         fittingFile,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Missing required fields"})
		return
	case errors.Is(err, service.ErrInvalidSaddle):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid saddle selection"})
		return
	case err != nil:
		log.WithError(err).Error("failed to create order")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error creating order",
			Error:   err.Error(),
		})
		return
	}

	log.WithFields(log.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"saddle":       order.Saddle.Name,
	}).Info("order created")

	c.JSON(http.StatusCreated, models.OrderResponse{
		Message: "Order created successfully",
		Order:   order,
	})
}

// ListOrders returns every order in creation order.
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders()
	if err != nil {
		log.WithError(err).Error("failed to list orders")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error listing orders",
			Error:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns one order by id.
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Order not found"})
		return
	}

	order, err := h.service.GetOrder(id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Order not found"})
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to get order")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error getting order",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus applies status/progress changes and appends a note when
// free text is supplied.
func (h *OrdersHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Order not found"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	upd := service.OrderUpdate{
		Status:   req.Status,
		Progress: req.Progress,
	}
	if req.Notes != nil {
		upd.Note = *req.Notes
	}

	order, err := h.service.UpdateOrder(id, upd)
	if errors.Is(err, repository.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Order not found"})
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to update order")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error updating order",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.OrderResponse{
		Message: "Order updated successfully",
		Order:   order,
	})
}
