package blog

import "mime/multipart"

type ListRequest struct {
	Page  int
	Limit int
}

type CreateBlogRequest struct {
	Title    string
	Content  string
	Author   string
	Featured bool
	Image    *multipart.FileHeader
}

type UpdateBlogRequest struct {
	Title    string
	Content  string
	Author   string
	Featured bool
	// replacement upload; empty means keep the current image
	Image *multipart.FileHeader
}

type BlogResponse struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Img       string `json:"img"`
	Featured  bool   `json:"featured"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
