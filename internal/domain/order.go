package domain

// Every submitted order starts out as processing; the backend advances the
// status from there.
const OrderStatusProcessing = "processing"

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// OrderRequest is the snapshot posted to the order collaborator. It is built
// once at submission time and never mutated afterwards.
type OrderRequest struct {
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerAddress string      `json:"customer_address"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
}

// OrderResult is the persisted order record returned by the collaborator on
// success. Extra response fields are ignored.
type OrderResult struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}
