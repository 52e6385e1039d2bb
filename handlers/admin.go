package handlers

import (
	"net/http"

	inventoryRepo "roomcheck/database/repository/inventory"
	"roomcheck/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AdminHandler exposes operator endpoints.
type AdminHandler struct {
	Cache *redis.Client
}

func NewAdminHandler(cache *redis.Client) *AdminHandler {
	return &AdminHandler{Cache: cache}
}

// InvalidateCategoryCacheHandler drops cached category listings so that
// publishing changes are visible before the TTL runs out.
func (h *AdminHandler) InvalidateCategoryCacheHandler(c *gin.Context) {
	logger := utils.LoggerFrom(c)

	if h.Cache == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Category cache is disabled"})
		return
	}

	if err := inventoryRepo.InvalidateCategories(c.Request.Context(), h.Cache); err != nil {
		logger.Error("failed to invalidate category cache", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "cache_invalidation_failed", "Failed to invalidate category cache")
		return
	}

	logger.Info("category cache invalidated")
	c.JSON(http.StatusOK, gin.H{"message": "Category cache invalidated"})
}
