package models

// CartLine is one product in the cart. ProductID is unique within a cart;
// adding the same product again increments Quantity instead of appending.
type CartLine struct {
	ProductID int     `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Receipt summarizes a completed checkout.
type Receipt struct {
	OrderID string     `json:"order_id"`
	Lines   []CartLine `json:"lines"`
	Total   float64    `json:"total"`
}
