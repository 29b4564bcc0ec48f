package store

import "github.com/google/uuid"

// newID returns a fresh collection-unique identifier. Random UUIDs replace
// the timestamp-derived tokens an earlier revision used, which could collide
// under rapid successive creation.
func newID() string {
	return uuid.NewString()
}
