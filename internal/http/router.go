package api

import (
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	intconfig "aqarhub/internal/config"
	h "aqarhub/internal/http/handlers"
	"aqarhub/internal/http/middleware"
	"aqarhub/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "Origin", "Accept-Language"}
	cfg.AllowCredentials = true
	cfg.MaxAge = 24 * time.Hour

	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins := []string{}
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowOrigins = []string{
			"http://localhost:3000", "http://127.0.0.1:3000",
			"http://localhost:5173", "http://127.0.0.1:5173",
		}
	}
	return cfg
}

func NewRouter(env intconfig.Env) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(corsConfig()))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.Warnf("failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Public browse/search
		api.GET("/listings", h.GetListings)
		api.GET("/listings/featured", h.GetFeaturedListings)
		api.GET("/listings/:ref", h.GetListingDetail)
		api.GET("/categories", h.GetCategories)
		api.GET("/areas", h.GetAreas)

		// Admin back-office
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(), middleware.RequireRoles("admin"))
		{
			listings := admin.Group("/listings")
			listings.GET("", h.AdminListListings)
			listings.GET("/export.pdf", h.ExportListingsPDF)
			listings.GET("/:id", h.AdminGetListing)
			listings.POST("", h.CreateListing)
			listings.PUT("/reorder", h.ReorderListings)
			listings.PUT("/:id", h.UpdateListing)
			listings.DELETE("/:id", h.DeleteListing)
			listings.PATCH("/:id/feature", h.SetListingFlags)
			listings.POST("/:id/images", h.UploadListingImage)

			categories := admin.Group("/categories")
			categories.GET("", h.GetCategories)
			categories.POST("", h.CreateCategory)
			categories.PUT("/reorder", h.ReorderCategories)
			categories.PUT("/:id", h.UpdateCategory)
			categories.DELETE("/:id", h.DeleteCategory)

			areas := admin.Group("/areas")
			areas.GET("", h.AdminListAreas)
			areas.POST("", h.CreateArea)
			areas.PUT("/reorder", h.ReorderAreas)
			areas.PUT("/:id", h.UpdateArea)
			areas.PATCH("/:id/active", h.SetAreaActive)
			areas.DELETE("/:id", h.DeleteArea)

			admin.DELETE("/images/:id", h.DeleteListingImage)
		}
	}

	return r
}
