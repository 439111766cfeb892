package port

import (
	"context"
	"encoding/json"
)

// Record keys of the invoice store.
const (
	KeyCompany   = "gst_invoice_company"
	KeyCustomers = "gst_invoice_customers"
	KeyItems     = "gst_invoice_items"
	KeyCounter   = "gst_invoice_counter"
	KeyInvoices  = "gst_invoice_saved"
	KeyAuth      = "gst_invoice_auth"
)

// UpdateFunc receives the current value of a key, nil when the key is unset,
// and returns the value to store in its place.
type UpdateFunc func(current json.RawMessage) (json.RawMessage, error)

// KVStore is the JSON record store every repository is built on.
// Get returns domain.ErrNotFound for a key that was never set.
// Update is an atomic read-modify-write: concurrent updates of the same key
// are serialized, and nothing is written when fn returns an error.
type KVStore interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Update(ctx context.Context, key string, fn UpdateFunc) (json.RawMessage, error)
	Ping(ctx context.Context) error
	Close() error
}
