package handlers

import (
	"net/http"

	"tracking-backend/pkg/cache"
	"tracking-backend/pkg/database"
	"tracking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	db            *mongo.Database
	positionCache cache.PositionCache
}

func NewHealthHandler(db *mongo.Database, positionCache cache.PositionCache) *HealthHandler {
	return &HealthHandler{
		db:            db,
		positionCache: positionCache,
	}
}

// Health reports store and cache reachability. The cache being down is
// reported but not fatal; the database being down is.
func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{
		"database": "up",
		"cache":    "up",
	}

	healthy := true
	if err := database.Health(h.db); err != nil {
		status["database"] = "down"
		healthy = false
	}
	if err := h.positionCache.HealthCheck(); err != nil {
		status["cache"] = "down"
	}

	if !healthy {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Service unhealthy", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service healthy", status)
}
