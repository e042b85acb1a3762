package cart

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"merma/catalog"
	"merma/middleware"
	"merma/session"

	"github.com/julienschmidt/httprouter"
)

type cartView struct {
	Items []struct {
		Quantity  int     `json:"quantity"`
		LineTotal float64 `json:"lineTotal"`
	} `json:"items"`
	ItemCount int `json:"itemCount"`
	Quote     struct {
		Subtotal float64 `json:"subtotal"`
		Shipping float64 `json:"shipping"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	} `json:"quote"`
}

func newTestServer(t *testing.T) (*httprouter.Router, *session.Manager, string) {
	t.Helper()
	mgr := session.NewManager()
	t.Cleanup(mgr.Stop)

	h := &Handler{Catalog: catalog.New()}
	router := httprouter.New()
	router.GET("/api/cart", middleware.WithSession(mgr, h.GetCart))
	router.POST("/api/cart/items", middleware.WithSession(mgr, h.AddToCart))
	router.PUT("/api/cart/items/:productId", middleware.WithSession(mgr, h.UpdateQuantity))
	router.DELETE("/api/cart/items/:productId", middleware.WithSession(mgr, h.RemoveFromCart))
	router.DELETE("/api/cart", middleware.WithSession(mgr, h.ClearCart))

	return router, mgr, mgr.Create()
}

func doJSON(t *testing.T, router *httprouter.Router, method, path, sid string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Session-ID", sid)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCartFlow(t *testing.T) {
	router, _, sid := newTestServer(t)

	// product 3 costs 8.75
	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", sid, map[string]int{"id": 3, "quantity": 1})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPut, "/api/cart/items/3", sid, map[string]int{"quantity": 5})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/cart", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	var view cartView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if view.ItemCount != 5 {
		t.Fatalf("expected 5 items, got %d", view.ItemCount)
	}
	// 5 × 8.75 = 43.75, below the threshold, so flat shipping plus 18% tax.
	if view.Quote.Subtotal != 43.75 {
		t.Fatalf("expected subtotal 43.75, got %v", view.Quote.Subtotal)
	}
	if view.Quote.Shipping != 15 {
		t.Fatalf("expected shipping 15, got %v", view.Quote.Shipping)
	}
}

func TestAddUnknownProductIsNotFound(t *testing.T) {
	router, _, sid := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/items", sid, map[string]int{"id": 999, "quantity": 1})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateToZeroRemovesItem(t *testing.T) {
	router, _, sid := newTestServer(t)

	doJSON(t, router, http.MethodPost, "/api/cart/items", sid, map[string]int{"id": 1, "quantity": 2})
	rec := doJSON(t, router, http.MethodPut, "/api/cart/items/1", sid, map[string]int{"quantity": 0})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/cart", sid, nil)
	var view cartView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if view.ItemCount != 0 {
		t.Fatalf("expected empty cart after zero update, got %d items", view.ItemCount)
	}
}

func TestClearCart(t *testing.T) {
	router, _, sid := newTestServer(t)

	doJSON(t, router, http.MethodPost, "/api/cart/items", sid, map[string]int{"id": 1, "quantity": 2})
	doJSON(t, router, http.MethodPost, "/api/cart/items", sid, map[string]int{"id": 2, "quantity": 1})

	rec := doJSON(t, router, http.MethodDelete, "/api/cart", sid, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("clear: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/cart", sid, nil)
	var view cartView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if view.ItemCount != 0 {
		t.Fatalf("expected empty cart, got %d items", view.ItemCount)
	}
}

func TestMissingSessionRejected(t *testing.T) {
	router, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without session header, got %d", rec.Code)
	}
}
