package models

import "time"

// CartItem is a (product id, quantity) line item. The product id is not
// required to resolve against the catalog at the state layer; unresolvable
// ids are filtered out at display time, not erased from state.
type CartItem struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
}

// ShippingInfo is the checkout shipping form.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	District  string `json:"district"`
	Reference string `json:"reference,omitempty"`
}

// PaymentInfo is the checkout payment form. Method is one of
// "card", "bank", "yape" or "plin"; the card fields apply to "card",
// PhoneNumber to the wallet methods. BankAccount is informational only:
// a bank transfer is confirmed out of band, so nothing is required.
type PaymentInfo struct {
	Method      string `json:"method"`
	CardNumber  string `json:"cardNumber,omitempty"`
	CardName    string `json:"cardName,omitempty"`
	CardExpiry  string `json:"cardExpiry,omitempty"`
	CardCvv     string `json:"cardCvv,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	BankAccount string `json:"bankAccount,omitempty"`
}

type OrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Order is a finalized checkout, kept in memory for the life of the process.
type Order struct {
	OrderID   string       `json:"orderId"`
	SessionID string       `json:"-"`
	Items     []OrderItem  `json:"items"`
	Shipping  ShippingInfo `json:"shipping"`
	Method    string       `json:"paymentMethod"`
	Subtotal  float64      `json:"subtotal"`
	Delivery  float64      `json:"shippingFee"`
	Tax       float64      `json:"tax"`
	Total     float64      `json:"total"`
	CreatedAt time.Time    `json:"createdAt"`
}
