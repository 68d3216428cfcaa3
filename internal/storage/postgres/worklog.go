package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tempo_fetcher/internal/domain"
)

type WorklogStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewWorklogStore(db *sqlx.DB, tm *TransactionManager) *WorklogStore {
	return &WorklogStore{db: db, tm: tm}
}

// WriteWorklogs upserts one extraction's worklog rows in a single
// transaction. A full refresh replaces the table contents.
func (s *WorklogStore) WriteWorklogs(ctx context.Context, rows []domain.Worklog, incremental bool) error {
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		ex := GetExecutor(txCtx, s.db)

		if !incremental {
			if _, err := ex.ExecContext(txCtx, "DELETE FROM worklogs"); err != nil {
				return err
			}
		}
		if len(rows) == 0 {
			return nil
		}

		query := `
			INSERT INTO worklogs (
				tempo_id, issue_id, author_account_id, start_date_time_utc,
				time_spent_seconds, created, updated
			) VALUES (
				:tempo_id, :issue_id, :author_account_id, :start_date_time_utc,
				:time_spent_seconds, :created, :updated
			)
			ON CONFLICT (tempo_id) DO UPDATE SET
				issue_id = EXCLUDED.issue_id,
				author_account_id = EXCLUDED.author_account_id,
				start_date_time_utc = EXCLUDED.start_date_time_utc,
				time_spent_seconds = EXCLUDED.time_spent_seconds,
				created = EXCLUDED.created,
				updated = EXCLUDED.updated`

		_, err := sqlx.NamedExecContext(txCtx, ex, query, rows)
		return err
	})
}
