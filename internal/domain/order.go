package domain

// CartItem is one line of an order: a product in a chosen size.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

type ShippingDetails struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Country       string `json:"country"`
	PaymentMethod string `json:"paymentMethod"`
	DeliveryNotes string `json:"deliveryNotes,omitempty"`
	JerseyName    string `json:"jerseyName,omitempty"`
	JerseyNumber  string `json:"jerseyNumber,omitempty"`
}

type OrderUser struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// OrderPayload is the full checkout payload posted by the client.
type OrderPayload struct {
	User     OrderUser       `json:"user"`
	Items    []CartItem      `json:"items"`
	Totals   OrderTotals     `json:"totals"`
	Shipping ShippingDetails `json:"shipping"`
	PlacedAt string          `json:"placedAt"`
}

// StoredOrder is an OrderPayload with the id assigned at append time.
// Immutable once stored; ids are never reused.
type StoredOrder struct {
	ID string `json:"id"`
	OrderPayload
}
