package handlers

import (
	"net/http"

	"aqarhub/internal/http/middleware"
	"aqarhub/internal/services"

	"github.com/gin-gonic/gin"
)

func areaService(c *gin.Context) services.AreaService {
	return services.AreaService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/areas — public list only shows active areas.
func GetAreas(c *gin.Context) {
	areas, err := areaService(c).List(true)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// GET /api/admin/areas
func AdminListAreas(c *gin.Context) {
	areas, err := areaService(c).List(false)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

type areaRequest struct {
	NameEN   string `json:"name_en"`
	NameAR   string `json:"name_ar"`
	IsActive bool   `json:"is_active"`
}

// POST /api/admin/areas
func CreateArea(c *gin.Context) {
	var req areaRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	area, err := areaService(c).Create(services.AreaInput(req))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": t(c, "area.created"),
		"area":    area,
	})
}

// PUT /api/admin/areas/:id
func UpdateArea(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req areaRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	area, err := areaService(c).Update(id, services.AreaInput(req))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": t(c, "area.updated"),
		"area":    area,
	})
}

type activeRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// PATCH /api/admin/areas/:id/active
func SetAreaActive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req activeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := areaService(c).SetActive(id, *req.IsActive); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondAction(c, http.StatusOK, "area.active_set")
}

// DELETE /api/admin/areas/:id
func DeleteArea(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := areaService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondAction(c, http.StatusOK, "area.deleted")
}

// PUT /api/admin/areas/reorder
func ReorderAreas(c *gin.Context) {
	var req reorderRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := areaService(c).Reorder(req.IDs); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondAction(c, http.StatusOK, "area.reordered")
}
