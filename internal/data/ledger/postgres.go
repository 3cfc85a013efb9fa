package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotel-frontdesk/internal/data/entity"
	"hotel-frontdesk/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// postgresStore keeps the whole ledger as one jsonb row per storage key.
//
//	CREATE TABLE IF NOT EXISTS ledger_blobs (
//	    storage_key TEXT PRIMARY KEY,
//	    rooms       JSONB NOT NULL,
//	    updated_at  TIMESTAMPTZ NOT NULL
//	);
type postgresStore struct {
	db         database.PgxIface
	storageKey string
	log        *zap.Logger
}

func NewPostgresStore(db database.PgxIface, storageKey string, log *zap.Logger) Store {
	return &postgresStore{
		db:         db,
		storageKey: storageKey,
		log:        log.With(zap.String("store", "ledger")),
	}
}

func (s *postgresStore) Load(ctx context.Context) ([]entity.Room, error) {
	query := `SELECT rooms FROM ledger_blobs WHERE storage_key = $1`

	var blob []byte
	err := s.db.QueryRow(ctx, query, s.storageKey).Scan(&blob)
	if err == pgx.ErrNoRows {
		return []entity.Room{}, nil
	}
	if err != nil {
		s.log.Error("Failed to load ledger blob",
			zap.Error(err),
			zap.String("storage_key", s.storageKey),
		)
		return nil, fmt.Errorf("load ledger %s: %w", s.storageKey, err)
	}

	return s.decode(blob), nil
}

func (s *postgresStore) Update(ctx context.Context, fn UpdateFunc) ([]entity.Room, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin ledger update", zap.Error(err))
		return nil, fmt.Errorf("begin ledger update: %w", err)
	}
	defer tx.Rollback(ctx)

	// Row lock is the single-writer boundary: concurrent updates queue here
	// instead of overwriting each other.
	var blob []byte
	err = tx.QueryRow(ctx,
		`SELECT rooms FROM ledger_blobs WHERE storage_key = $1 FOR UPDATE`,
		s.storageKey,
	).Scan(&blob)
	if err != nil && err != pgx.ErrNoRows {
		s.log.Error("Failed to read ledger blob for update",
			zap.Error(err),
			zap.String("storage_key", s.storageKey),
		)
		return nil, fmt.Errorf("read ledger %s for update: %w", s.storageKey, err)
	}

	rooms := s.decode(blob)

	updated, err := fn(rooms)
	if err != nil {
		return nil, err
	}

	if updated == nil {
		updated = []entity.Room{}
	}
	encoded, err := json.Marshal(updated)
	if err != nil {
		return nil, fmt.Errorf("encode ledger %s: %w", s.storageKey, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO ledger_blobs (storage_key, rooms, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (storage_key) DO UPDATE SET rooms = $2, updated_at = $3
	`, s.storageKey, encoded, time.Now())
	if err != nil {
		s.log.Error("Failed to write ledger blob",
			zap.Error(err),
			zap.String("storage_key", s.storageKey),
		)
		return nil, fmt.Errorf("write ledger %s: %w", s.storageKey, err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit ledger update", zap.Error(err))
		return nil, fmt.Errorf("commit ledger update: %w", err)
	}

	return updated, nil
}

// decode turns a stored blob into rooms. A nil blob or broken JSON yields an
// empty ledger with a warning, mirroring how the reference treated a missing
// or corrupt stored value.
func (s *postgresStore) decode(blob []byte) []entity.Room {
	if len(blob) == 0 {
		return []entity.Room{}
	}

	var rooms []entity.Room
	if err := json.Unmarshal(blob, &rooms); err != nil {
		s.log.Warn("Ledger blob is not valid JSON, treating as empty",
			zap.Error(err),
			zap.String("storage_key", s.storageKey),
		)
		return []entity.Room{}
	}

	if rooms == nil {
		rooms = []entity.Room{}
	}
	return rooms
}
