package apiclient

import (
	"context"
	"time"
)

// Simulated stands in for the backend that does not exist yet. Every call
// sleeps the configured latency and then succeeds; there is no failure path
// and no cancellation, matching the storefront's fake network calls. The
// sleep is the single suspension point in the request flow.
type Simulated struct {
	Latency time.Duration
}

var okBody = []byte(`{"ok":true}`)

func (s *Simulated) Get(ctx context.Context, path string) ([]byte, error) {
	time.Sleep(s.Latency)
	return okBody, nil
}

func (s *Simulated) Post(ctx context.Context, path string, body any) ([]byte, error) {
	time.Sleep(s.Latency)
	return okBody, nil
}

func (s *Simulated) Put(ctx context.Context, path string, body any) ([]byte, error) {
	time.Sleep(s.Latency)
	return okBody, nil
}

func (s *Simulated) Delete(ctx context.Context, path string) ([]byte, error) {
	time.Sleep(s.Latency)
	return okBody, nil
}
