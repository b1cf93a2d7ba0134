package models

import "time"

// Category groups listings (villa, apartment, office, ...).
type Category struct {
	ID            int64     `json:"id"`
	NameEN        string    `json:"name_en"`
	NameAR        string    `json:"name_ar"`
	Slug          string    `json:"slug"`
	DescriptionEN string    `json:"description_en"`
	DescriptionAR string    `json:"description_ar"`
	OrderIndex    int       `json:"order_index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
