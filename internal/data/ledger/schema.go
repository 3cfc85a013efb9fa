package ledger

import (
	"context"
	"fmt"

	"hotel-frontdesk/pkg/database"
)

// EnsureSchema creates the ledger blob table if it does not exist yet.
func EnsureSchema(ctx context.Context, db database.PgxIface) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS ledger_blobs (
			storage_key TEXT PRIMARY KEY,
			rooms       JSONB NOT NULL,
			updated_at  TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure ledger schema: %w", err)
	}
	return nil
}
