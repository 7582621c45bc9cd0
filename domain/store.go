package domain

// Collection names shared by every storage backend.
const (
	CollectionTenant  = "tenant"
	CollectionProduct = "product"
	CollectionOrder   = "order"
)

// StoreStatus is what a backend reports to the connectivity probe.
type StoreStatus struct {
	Backend     string
	Name        string
	Connected   bool
	Collections []string
	Err         error
}
