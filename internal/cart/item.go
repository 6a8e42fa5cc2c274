package cart

// LineItem is one product-and-quantity entry. The JSON field names follow the
// storefront's persisted cart contract: a JSON array of
// {_id, name, price, image, quantity} under the "cart" key.
type LineItem struct {
	ProductID string  `json:"_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Snapshot holds the display fields copied into the cart at add-time. They are
// never re-synced with the catalog afterwards; the price a customer saw when
// adding is the price the cart keeps.
type Snapshot struct {
	Name  string
	Price float64
	Image string
}

// Total is the sum of price×quantity over the given items. Pure function of the
// state, never persisted.
func Total(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
