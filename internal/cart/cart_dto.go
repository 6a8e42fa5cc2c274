package cart

type AddItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

type UpdateQtyRequest struct {
	// delta, not an absolute quantity: -1 from the minus button, +1 from plus
	Delta int `json:"delta" binding:"required"`
}

type CartDetailResponse struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}
