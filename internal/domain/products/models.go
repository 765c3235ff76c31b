package products

// Product is a synthetic catalog item. It is generated per request and never stored.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
