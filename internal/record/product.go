package record

import "fmt"

// Product is a priced item with a stock level that never goes below 0.
type Product struct {
	name     string
	price    int64
	quantity int64
}

type productFields struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"    validate:"gte=0"`
	Quantity int64  `json:"quantity" validate:"gte=0"`
}

// NewProduct creates a product. Price and quantity must not be negative.
func NewProduct(name string, price, quantity int64) (*Product, error) {
	return construct("product", productFields{Name: name, Price: price, Quantity: quantity},
		func(f productFields) *Product {
			return &Product{name: f.Name, price: f.Price, quantity: f.Quantity}
		})
}

// Buy takes count items out of stock. It is refused with
// ErrNonPositiveAmount for count <= 0 and with ErrInsufficientStock when
// fewer than count items are left.
func (p *Product) Buy(count int64) error {
	if count <= 0 {
		return ErrNonPositiveAmount
	}
	if count > p.quantity {
		return ErrInsufficientStock
	}
	p.quantity -= count
	return nil
}

// Restock adds count items. Only positive counts are accepted, and a
// restock that would overflow the stock level is refused with ErrOverflow.
func (p *Product) Restock(count int64) error {
	if count <= 0 {
		return ErrNonPositiveAmount
	}
	if !fits(p.quantity, count) {
		return ErrOverflow
	}
	p.quantity += count
	return nil
}

// Name, Price and Quantity read the product's fields.
func (p *Product) Name() string    { return p.name }
func (p *Product) Price() int64    { return p.price }
func (p *Product) Quantity() int64 { return p.quantity }

// Info summarises the product in one line.
func (p *Product) Info() string {
	return fmt.Sprintf("%s: price %d$, %d in stock", p.name, p.price, p.quantity)
}
