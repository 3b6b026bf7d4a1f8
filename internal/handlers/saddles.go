package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"saddleworks-backend/internal/catalog"
	"saddleworks-backend/internal/models"
)

type SaddlesHandler struct {
	catalog *catalog.Catalog
}

func NewSaddlesHandler(cat *catalog.Catalog) *SaddlesHandler {
	return &SaddlesHandler{catalog: cat}
}

// ListSaddles returns the full catalog.
func (h *SaddlesHandler) ListSaddles(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}

// GetSaddle returns one offering by id. A non-numeric id is treated the same
// as an unknown one.
func (h *SaddlesHandler) GetSaddle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Saddle not found"})
		return
	}

	saddle, ok := h.catalog.FindByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Saddle not found"})
		return
	}

	c.JSON(http.StatusOK, saddle)
}
