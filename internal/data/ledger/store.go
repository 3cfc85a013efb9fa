// Package ledger persists the room ledger: the JSON array of currently
// checked-in rooms, stored whole under a single storage key.
package ledger

import (
	"context"

	"hotel-frontdesk/internal/data/entity"
)

// UpdateFunc receives the current ledger and returns the ledger to persist.
// Returning an error aborts the update and nothing is written.
type UpdateFunc func(rooms []entity.Room) ([]entity.Room, error)

// Store is the injected persistence capability for the room ledger.
//
// Load treats a missing or unparseable blob as an empty ledger, never as a
// fatal error. Update runs the mutation inside the store's transaction
// boundary: all ledger writes are serialized through it, so a read-modify-write
// can never lose an interleaved write.
type Store interface {
	Load(ctx context.Context) ([]entity.Room, error)
	Update(ctx context.Context, fn UpdateFunc) ([]entity.Room, error)
}
