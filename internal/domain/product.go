package domain

// Product is a kit in the storefront catalog.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Club        string   `json:"club"`
	Season      string   `json:"season"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Home        bool     `json:"home"`
	Badge       string   `json:"badge"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Limited     bool     `json:"limited,omitempty"`
}
