package models

// Product represents an item in the supplement store catalog.
type Product struct {
	ID       string
	Name     string
	Category string
	Price    float64
	Stock    int
	MinStock int
	ImageURL string
}

// CartLine pairs a product with the quantity added to the open sale.
// A cart holds at most one line per product.
type CartLine struct {
	Product  Product
	Quantity int
}

// Subtotal returns the line value (unit price times quantity).
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
