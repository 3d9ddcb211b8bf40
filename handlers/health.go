package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interviewcoach/backend/models"
)

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:  "ok",
			Service: service,
		})
	}
}
