package contact

type SubmitRequest struct {
	Name    string `json:"name" binding:"required" validate:"required"`
	Email   string `json:"email" binding:"required,email" validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Message string `json:"message"`
}

type OrderLineRequest struct {
	ProductID string  `json:"_id" binding:"required" validate:"required"`
	Name      string  `json:"name" binding:"required" validate:"required"`
	Price     float64 `json:"price" binding:"min=0" validate:"min=0"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" binding:"required,min=1" validate:"required,min=1"`
}

// CheckoutRequest is the cart page's submission: the contact fields plus the
// cart lines captured at the moment the customer placed the order.
type CheckoutRequest struct {
	SubmitRequest
	Products []OrderLineRequest `json:"products"`
}

type ListRequest struct {
	Status string
	Page   int
	Limit  int
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderLineResponse struct {
	ProductID string  `json:"_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int32   `json:"quantity"`
}

type ContactResponse struct {
	ID        string              `json:"_id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	Address   string              `json:"address"`
	Message   string              `json:"message"`
	Status    string              `json:"status"`
	Items     []OrderLineResponse `json:"items,omitempty"`
	Total     float64             `json:"total,omitempty"`
	CreatedAt string              `json:"createdAt"`
}
