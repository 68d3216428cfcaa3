package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"tempo_fetcher/internal/domain"
)

type SyncStateStore struct {
	db *sqlx.DB
}

func NewSyncStateStore(db *sqlx.DB) *SyncStateStore {
	return &SyncStateStore{db: db}
}

func (s *SyncStateStore) Get(ctx context.Context, dataset string) (*domain.SyncState, error) {
	var state domain.SyncState
	query := `
		SELECT id, dataset, last_run_at, total_rows
		FROM sync_state
		WHERE dataset = $1`

	err := s.db.GetContext(ctx, &state, query, dataset)
	if errors.Is(err, sql.ErrNoRows) {
		// Empty state for datasets that have never run
		return &domain.SyncState{
			Dataset:   dataset,
			LastRunAt: time.Time{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *SyncStateStore) Update(ctx context.Context, state *domain.SyncState) error {
	query := `
		INSERT INTO sync_state (dataset, last_run_at, total_rows)
		VALUES ($1, $2, $3)
		ON CONFLICT (dataset) DO UPDATE SET
			last_run_at = EXCLUDED.last_run_at,
			total_rows = EXCLUDED.total_rows`

	_, err := s.db.ExecContext(ctx, query,
		state.Dataset,
		state.LastRunAt,
		state.TotalRows,
	)
	return err
}
