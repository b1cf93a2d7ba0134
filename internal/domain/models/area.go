package models

import "time"

// Area is a geographic zone listings belong to.
type Area struct {
	ID         int64     `json:"id"`
	NameEN     string    `json:"name_en"`
	NameAR     string    `json:"name_ar"`
	Slug       string    `json:"slug"`
	IsActive   bool      `json:"is_active"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
