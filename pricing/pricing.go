// Package pricing derives shipping, tax and grand total from a cart
// subtotal. Everything here is a pure function of its inputs.
package pricing

const (
	// FreeShippingThreshold is exclusive: a subtotal of exactly 150 still
	// pays the flat fee.
	FreeShippingThreshold = 150.0
	FlatShippingFee       = 15.0
	TaxRate               = 0.18
)

type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Compute builds a quote from the subtotal alone. An empty cart quotes the
// flat shipping fee on top of a zero subtotal; that matches the storefront's
// current behavior and is deliberately left as is.
func Compute(subtotal float64) Quote {
	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * TaxRate
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
