package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"saddleworks-backend/internal/models"
)

// HealthHandler reports liveness for the hosting platform's checks.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
	})
}
