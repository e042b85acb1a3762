package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"merma/globals"
	"merma/models"
	"merma/session"

	"github.com/julienschmidt/httprouter"
)

func serveProfile(t *testing.T, store *session.Store, tokenUserID int) *httptest.ResponseRecorder {
	t.Helper()
	h := &Handler{}
	router := httprouter.New()
	router.GET("/api/profile", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx := session.NewContext(r.Context(), store)
		ctx = context.WithValue(ctx, globals.UserIDKey, tokenUserID)
		h.GetProfile(w, r.WithContext(ctx), ps)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProfileRequiresLogin(t *testing.T) {
	rec := serveProfile(t, session.NewStore(), 1)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for logged-out session, got %d", rec.Code)
	}
}

func TestProfileTokenSessionMismatch(t *testing.T) {
	store := session.NewStore()
	store.Dispatch(session.Login{User: models.User{ID: 1, Name: "Usuario de Prueba"}})

	rec := serveProfile(t, store, 99)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for mismatched token, got %d", rec.Code)
	}
}

func TestProfilePayload(t *testing.T) {
	store := session.NewStore()
	store.Dispatch(session.Login{User: models.User{ID: 1, Name: "Usuario de Prueba"}})
	store.Dispatch(session.AddToCart{ProductID: 1, Quantity: 2})
	store.Dispatch(session.AddToFavorites{ProductID: 4})

	rec := serveProfile(t, store, 1)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		User  models.User `json:"user"`
		Stats struct {
			CartItems int `json:"cartItems"`
			Favorites int `json:"favorites"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if payload.User.Name != "Usuario de Prueba" {
		t.Fatalf("unexpected user %q", payload.User.Name)
	}
	if payload.Stats.CartItems != 2 || payload.Stats.Favorites != 1 {
		t.Fatalf("unexpected stats: %+v", payload.Stats)
	}
}
