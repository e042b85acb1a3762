package checkout

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"merma/apiclient"
	"merma/catalog"
	"merma/globals"
	"merma/models"
	"merma/pricing"
	"merma/session"
	"merma/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// Handler drives the place-order flow. Payment goes through the API client
// boundary, which today is the simulated backend.
type Handler struct {
	Catalog *catalog.Store
	Orders  *Registry
	API     apiclient.Client
}

type orderRequest struct {
	Shipping models.ShippingInfo `json:"shipping"`
	Payment  models.PaymentInfo  `json:"payment"`
}

// PlaceOrder validates the checkout forms, runs the simulated payment and
// finalizes the order. The session is marked busy for the duration of the
// payment call so a double submission fails fast instead of charging twice.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	errs := validateShipping(req.Shipping)
	for field, msg := range validatePayment(req.Payment) {
		errs[field] = msg
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(w, errs)
		return
	}

	store, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	snap := store.Snapshot()
	items := make([]models.OrderItem, 0, len(snap.Cart))
	var subtotal float64
	for _, ci := range snap.Cart {
		p, found := h.Catalog.Product(ci.ProductID)
		if !found {
			continue
		}
		items = append(items, models.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  ci.Quantity,
		})
		subtotal += p.Price * float64(ci.Quantity)
	}
	if len(items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	if !store.BeginCheckout() {
		utils.RespondWithError(w, http.StatusConflict, "Checkout already in progress")
		return
	}
	defer store.EndCheckout()

	// Simulated payment processing; the one suspension point in the flow.
	if _, err := h.API.Post(r.Context(), "/payments/charge", req.Payment); err != nil {
		log.Println("payment call failed:", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Payment failed. Please try again.")
		return
	}

	// Quote from the snapshot the line items came from, so the totals can
	// never disagree with the items even if the cart moved during payment.
	quote := pricing.Compute(subtotal)
	sid, _ := r.Context().Value(globals.SessionIDKey).(string)
	order := models.Order{
		OrderID:   uuid.NewString(),
		SessionID: sid,
		Items:     items,
		Shipping:  req.Shipping,
		Method:    req.Payment.Method,
		Subtotal:  quote.Subtotal,
		Delivery:  quote.Shipping,
		Tax:       quote.Tax,
		Total:     quote.Total,
		CreatedAt: time.Now(),
	}
	h.Orders.Add(order)

	store.Dispatch(session.ClearCart{})
	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrder looks up a finalized order.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, ok := h.Orders.Get(ps.ByName("orderId"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}
