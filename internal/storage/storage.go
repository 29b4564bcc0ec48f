package storage

import "errors"

var (
	// ErrKeyNotFound is returned when a storage key has no stored blob.
	ErrKeyNotFound = errors.New("storage key not found")

	// ErrStorageError is returned for unexpected backend errors.
	// It can be used to wrap more specific driver errors.
	ErrStorageError = errors.New("storage error")
)

// Backend is a durable key-value store holding one serialized collection per
// named key. Writes must be durable before Set returns; the domain store
// relies on that for its write-through contract. Concurrent processes sharing
// a backend are not reconciled: the last full-collection write wins.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}
