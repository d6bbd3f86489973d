package product

import "time"

type Variant struct {
	ID        uint    `json:"id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     int     `json:"price"`
	Stock     int     `json:"stock"`
	ImageURL  *string `json:"image_url,omitempty"`
}

type Product struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	CategoryID   uint       `json:"category_id"`
	CategoryName string     `json:"category_name"`
	Price        int        `json:"price"`
	Stock        int        `json:"stock"`
	Description  *string    `json:"description,omitempty"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Status       string     `json:"status"`
	Variants     []*Variant `json:"variants"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ListOptions struct {
	Filter     *string
	CategoryID *uint
	Limit      *int32
	Page       *int32
}

type GetVariantOptions struct {
	VariantID  uint
	OnlyActive bool
}
