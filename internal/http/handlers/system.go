package handlers

import (
	"net/http"

	intconfig "aqarhub/internal/config"
	"aqarhub/internal/db"

	"github.com/gin-gonic/gin"
)

// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/db-check
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	if missing := db.MissingTables(intconfig.DB,
		"listings", "listing_images", "categories", "areas", "users"); len(missing) > 0 {
		c.JSON(http.StatusOK, gin.H{"status": "degraded", "missing_tables": missing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
