package handlers

import (
	"net/http"
	"strconv"

	"aqarhub/internal/domain"
	"aqarhub/internal/domain/models"
	"aqarhub/internal/http/middleware"
	"aqarhub/internal/repositories"
	"aqarhub/internal/services"

	"github.com/gin-gonic/gin"
)

func listingService(c *gin.Context) services.ListingService {
	return services.ListingService{RequestID: middleware.GetRequestID(c)}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "must be a positive integer"})
		return 0, false
	}
	return id, true
}

func listingFilterFromQuery(c *gin.Context) models.ListingFilter {
	f := models.ListingFilter{
		Status: c.Query("status"),
		Query:  c.Query("q"),
	}
	f.CategoryID, _ = strconv.ParseInt(c.Query("category_id"), 10, 64)
	f.AreaID, _ = strconv.ParseInt(c.Query("area_id"), 10, 64)
	f.MinPrice, _ = strconv.ParseFloat(c.Query("min_price"), 64)
	f.MaxPrice, _ = strconv.ParseFloat(c.Query("max_price"), 64)
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "24"))
	if f.PageSize > 100 {
		f.PageSize = 100
	}
	return f
}

// GET /api/listings
func GetListings(c *gin.Context) {
	f := listingFilterFromQuery(c)
	// the public feed only ever shows active listings
	f.Status = domain.StatusActive

	listings, total, err := listingService(c).List(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"listings":   listings,
		"pagination": domain.Pagination{Page: f.Page, PageSize: f.PageSize, Total: total},
	})
}

// GET /api/listings/featured
func GetFeaturedListings(c *gin.Context) {
	f := listingFilterFromQuery(c)
	f.Status = domain.StatusActive
	f.Featured = true

	listings, _, err := listingService(c).List(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// GET /api/listings/:ref  (slug or numeric id)
func GetListingDetail(c *gin.Context) {
	svc := listingService(c)
	listing, err := svc.GetBySlugOrID(c.Param("ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	images, err := repositories.ListingRepository{}.Images(listing.ID)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "failed to load listing images", Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": listing, "images": images})
}

// GET /api/admin/listings
func AdminListListings(c *gin.Context) {
	listings, total, err := listingService(c).List(listingFilterFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings, "total": total})
}

// GET /api/admin/listings/:id
func AdminGetListing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	listing, err := listingService(c).GetBySlugOrID(strconv.FormatInt(id, 10))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

type listingRequest struct {
	TitleEN       string  `json:"title_en"`
	TitleAR       string  `json:"title_ar"`
	DescriptionEN string  `json:"description_en"`
	DescriptionAR string  `json:"description_ar"`
	Price         float64 `json:"price"`
	CategoryID    int64   `json:"category_id"`
	AreaID        int64   `json:"area_id"`
	Status        string  `json:"status"`
	IsFeatured    bool    `json:"is_featured"`
	IsNew         bool    `json:"is_new"`
	OrderIndex    *int    `json:"order_index"`
	CoverURL      string  `json:"cover_url"`
}

func (r listingRequest) input() services.ListingInput {
	return services.ListingInput{
		TitleEN:       r.TitleEN,
		TitleAR:       r.TitleAR,
		DescriptionEN: r.DescriptionEN,
		DescriptionAR: r.DescriptionAR,
		Price:         r.Price,
		CategoryID:    r.CategoryID,
		AreaID:        r.AreaID,
		Status:        r.Status,
		IsFeatured:    r.IsFeatured,
		IsNew:         r.IsNew,
		OrderIndex:    r.OrderIndex,
		CoverURL:      r.CoverURL,
	}
}

// POST /api/admin/listings
func CreateListing(c *gin.Context) {
	var req listingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	listing, err := listingService(c).Create(req.input())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": t(c, "listing.created"),
		"listing": listing,
	})
}

// PUT /api/admin/listings/:id
func UpdateListing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req listingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	listing, err := listingService(c).Update(id, req.input())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": t(c, "listing.updated"),
		"listing": listing,
	})
}

// DELETE /api/admin/listings/:id
func DeleteListing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := listingService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondAction(c, http.StatusOK, "listing.deleted")
}

type flagsRequest struct {
	IsFeatured *bool `json:"is_featured"`
	IsNew      *bool `json:"is_new"`
}

// PATCH /api/admin/listings/:id/feature
func SetListingFlags(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req flagsRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.IsFeatured == nil && req.IsNew == nil {
		RespondDomainError(c, domain.ValidationError{Field: "is_featured", Msg: "at least one flag must be provided"})
		return
	}
	listing, err := listingService(c).SetFlags(id, req.IsFeatured, req.IsNew)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": t(c, "listing.flags_set"),
		"listing": listing,
	})
}

type reorderRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// PUT /api/admin/listings/reorder
func ReorderListings(c *gin.Context) {
	var req reorderRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := listingService(c).Reorder(req.IDs); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondAction(c, http.StatusOK, "listing.reordered")
}

// GET /api/admin/listings/export.pdf
func ExportListingsPDF(c *gin.Context) {
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	data, filename, err := svc.ExportListings(listingFilterFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
