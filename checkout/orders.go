package checkout

import (
	"sync"

	"merma/models"
)

// Registry holds finalized orders in memory for the life of the process.
type Registry struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func NewRegistry() *Registry {
	return &Registry{orders: make(map[string]models.Order)}
}

func (reg *Registry) Add(o models.Order) {
	reg.mu.Lock()
	reg.orders[o.OrderID] = o
	reg.mu.Unlock()
}

func (reg *Registry) Get(orderID string) (models.Order, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	o, ok := reg.orders[orderID]
	return o, ok
}
