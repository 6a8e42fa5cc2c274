package product

import "mime/multipart"

type ListRequest struct {
	Search string
	Page   int
	Limit  int
}

type CreateProductRequest struct {
	Name        string
	Description string
	Price       float64
	Stock       int32
	Featured    bool
	Images      []*multipart.FileHeader
}

type UpdateProductRequest struct {
	Name        string
	Description string
	Price       float64
	Stock       int32
	Featured    bool
	// new uploads; existing URLs the admin kept are sent alongside
	Images    []*multipart.FileHeader
	KeptImage []string
}

type ProductResponse struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int32    `json:"stock"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}
