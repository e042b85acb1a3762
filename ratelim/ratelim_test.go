package ratelim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func serve(t *testing.T, handler httprouter.Handle, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler(rec, req, nil)
	return rec
}

func TestLimitBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter()
	t.Cleanup(rl.Stop)

	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		if rec := serve(t, handler, "10.0.0.1:1234"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 within burst, got %d", i+1, rec.Code)
		}
	}
	if rec := serve(t, handler, "10.0.0.1:1234"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 past burst, got %d", rec.Code)
	}

	// each client IP gets its own bucket
	if rec := serve(t, handler, "10.0.0.2:1234"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a fresh client, got %d", rec.Code)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter()
	rl.Stop()
	rl.Stop()
}
