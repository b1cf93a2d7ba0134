package handlers

import (
	"net/http"

	"aqarhub/internal/http/middleware"
	"aqarhub/internal/services"

	"github.com/gin-gonic/gin"
)

func categoryService(c *gin.Context) services.CategoryService {
	return services.CategoryService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/categories
func GetCategories(c *gin.Context) {
	categories, err := categoryService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type categoryRequest struct {
	NameEN        string `json:"name_en"`
	NameAR        string `json:"name_ar"`
	DescriptionEN string `json:"description_en"`
	DescriptionAR string `json:"description_ar"`
}

func (r categoryRequest) input() services.CategoryInput {
	return services.CategoryInput{
		NameEN:        r.NameEN,
		NameAR:        r.NameAR,
		DescriptionEN: r.DescriptionEN,
		DescriptionAR: r.DescriptionAR,
	}
}

// POST /api/admin/categories
func CreateCategory(c *gin.Context) {
	var req categoryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	category, err := categoryService(c).Create(req.input())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  t(c, "category.created"),
		"category": category,
	})
}

// PUT /api/admin/categories/:id
func UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req categoryRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	category, err := categoryService(c).Update(id, req.input())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  t(c, "category.updated"),
		"category": category,
	})
}

// DELETE /api/admin/categories/:id
func DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := categoryService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondAction(c, http.StatusOK, "category.deleted")
}

// PUT /api/admin/categories/reorder
func ReorderCategories(c *gin.Context) {
	var req reorderRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := categoryService(c).Reorder(req.IDs); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondAction(c, http.StatusOK, "category.reordered")
}
