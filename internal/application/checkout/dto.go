package checkout

// ProductRef identifies a product selected for an order
type ProductRef struct {
	ProductID string `json:"productId" binding:"required"`
}

// PlaceOrderInput is the payload for placing an order
type PlaceOrderInput struct {
	ClientID string       `json:"clientId" binding:"required"`
	Products []ProductRef `json:"products"`
}

// InvoiceRef points at the invoice generated for an approved order
type InvoiceRef struct {
	ID string `json:"id"`
}

// PlaceOrderOutput is the result of a placed order. Invoice is nil when
// payment was declined.
type PlaceOrderOutput struct {
	ID       string       `json:"id"`
	Total    float64      `json:"total"`
	Products []ProductRef `json:"products"`
	Invoice  *InvoiceRef  `json:"invoice,omitempty"`
}
