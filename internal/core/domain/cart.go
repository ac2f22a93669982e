package domain

// CartLine is a single product in the demo shopping cart. ProductName is the
// unique key; quantity is implicitly one.
type CartLine struct {
	ProductName string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Color       string  `json:"color,omitempty"`
	ImageRef    string  `json:"image,omitempty"`
}
