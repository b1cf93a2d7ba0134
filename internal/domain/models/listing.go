package models

import "time"

// Listing is a property record shown to end users (for sale/rent).
// Promoted listings (featured or new) carry an order_index below every
// regular listing so an ascending sort renders them first.
type Listing struct {
	ID            int64     `json:"id"`
	TitleEN       string    `json:"title_en"`
	TitleAR       string    `json:"title_ar"`
	Slug          string    `json:"slug"`
	DescriptionEN string    `json:"description_en"`
	DescriptionAR string    `json:"description_ar"`
	Price         float64   `json:"price"`
	CategoryID    int64     `json:"category_id"`
	AreaID        int64     `json:"area_id"`
	Status        string    `json:"status"`
	IsFeatured    bool      `json:"is_featured"`
	IsNew         bool      `json:"is_new"`
	OrderIndex    int       `json:"order_index"`
	CoverURL      string    `json:"cover_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListingPatch supports PATCH-style updates via key presence.
type ListingPatch struct {
	TitleEN       *string  `json:"title_en"`
	TitleAR       *string  `json:"title_ar"`
	// Slug is never taken from the request body; the service derives it
	// from the titles when they change.
	Slug          *string  `json:"-"`
	DescriptionEN *string  `json:"description_en"`
	DescriptionAR *string  `json:"description_ar"`
	Price         *float64 `json:"price"`
	CategoryID    *int64   `json:"category_id"`
	AreaID        *int64   `json:"area_id"`
	Status        *string  `json:"status"`
	IsFeatured    *bool    `json:"is_featured"`
	IsNew         *bool    `json:"is_new"`
	OrderIndex    *int     `json:"order_index"`
	CoverURL      *string  `json:"cover_url"`
}

// ListingImage is a stored media object attached to a listing.
type ListingImage struct {
	ID        int64  `json:"id"`
	ListingID int64  `json:"listing_id"`
	ObjectKey string `json:"object_key"`
	URL       string `json:"url"`
	SortOrder int    `json:"sort_order"`
}

// ListingFilter narrows public/admin listing queries.
type ListingFilter struct {
	Status     string
	CategoryID int64
	AreaID     int64
	MinPrice   float64
	MaxPrice   float64
	Query      string
	Featured   bool
	Page       int
	PageSize   int
}
