package handlers

import (
	"net/http"

	"roomcheck/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last dependency snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code, label := http.StatusOK, "ok"
	if !status.Healthy() {
		code, label = http.StatusServiceUnavailable, "degraded"
	}
	c.JSON(code, gin.H{
		"status":  label,
		"message": "Hi, I'm roomcheck",
		"health":  status,
	})
}
