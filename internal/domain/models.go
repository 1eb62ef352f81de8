package domain

// Dish is a catalog item available for ordering. Orders copy dish fields
// into their own line items, so editing or deleting a dish never touches
// existing orders.
type Dish struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       int    `json:"price"`
}

// OrderDish is one line item owned by an Order. It is an independent copy
// of the dish it was built from, not a reference into the catalog.
type OrderDish struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
}

type Order struct {
	ID           int         `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       string      `json:"status"`
	Dishes       []OrderDish `json:"dishes"`
}

const (
	StatusPending        = "pending"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out-for-delivery"
	StatusDelivered      = "delivered"
)

var validStatuses = map[string]bool{
	StatusPending:        true,
	StatusPreparing:      true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
}

// ValidStatus reports whether s is a member of the order status enumeration.
// Transitions between valid statuses are not restricted.
func ValidStatus(s string) bool {
	return validStatuses[s]
}
