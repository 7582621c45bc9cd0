// Package memory is an in-process storage backend. It keeps every
// collection in maps guarded by a single lock and is used when no
// DATABASE_URL is configured.
package memory

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"oneMinuteShop/domain"

	"github.com/google/uuid"
)

type entry[T any] struct {
	seq   uint64
	value T
}

// Store holds the three collections. Repositories created from the same
// Store share data.
type Store struct {
	mu       sync.RWMutex
	seq      uint64
	tenants  map[string]entry[domain.Tenant]
	products map[string]entry[domain.Product]
	orders   map[string]entry[domain.Order]
}

func NewStore() *Store {
	return &Store{
		tenants:  make(map[string]entry[domain.Tenant]),
		products: make(map[string]entry[domain.Product]),
		orders:   make(map[string]entry[domain.Order]),
	}
}

// next must be called with mu held for writing.
func (s *Store) next() uint64 {
	s.seq++
	return s.seq
}

// validID reports whether id has the shape of a canonical id.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Status reports the in-process collections to the connectivity probe.
func (s *Store) Status(_ context.Context) domain.StoreStatus {
	return domain.StoreStatus{
		Backend:     "memory",
		Name:        "memory",
		Connected:   true,
		Collections: []string{domain.CollectionTenant, domain.CollectionProduct, domain.CollectionOrder},
	}
}

// Close is a no-op kept for lifecycle symmetry with the other backends.
func (s *Store) Close(_ context.Context) error {
	return nil
}

// newestFirst orders entries by created_at descending. Equal timestamps
// fall back to insertion order, newest first.
func newestFirst[T any](entries []entry[T], createdAt func(T) time.Time) []T {
	sort.SliceStable(entries, func(i, j int) bool {
		ci, cj := createdAt(entries[i].value), createdAt(entries[j].value)
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return entries[i].seq > entries[j].seq
	})

	out := make([]T, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.value)
	}
	return out
}

func cloneTenant(t domain.Tenant) domain.Tenant {
	t.PaymentDetails = maps.Clone(t.PaymentDetails)
	return t
}

func cloneProduct(p domain.Product) domain.Product {
	p.ImageURLs = slices.Clone(p.ImageURLs)
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	return p
}

func cloneOrder(o domain.Order) domain.Order {
	o.ShippingAddress = maps.Clone(o.ShippingAddress)
	return o
}
