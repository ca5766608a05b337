package domain

// Product is a catalog entry as served by the catalog collaborator.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	InStock     bool    `json:"in_stock"`
	StockQty    *int    `json:"stock_qty,omitempty"`
}

// Purchasable reports whether the add-to-cart affordance should be offered
// for this product. An absent stock quantity does not block an in-stock
// product.
func (p Product) Purchasable() bool {
	if !p.InStock {
		return false
	}
	if p.StockQty != nil && *p.StockQty <= 0 {
		return false
	}
	return true
}
