package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tempo_fetcher/internal/domain"
)

type AuthorStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewAuthorStore(db *sqlx.DB, tm *TransactionManager) *AuthorStore {
	return &AuthorStore{db: db, tm: tm}
}

func (s *AuthorStore) WriteWorklogAuthors(ctx context.Context, rows []domain.WorklogAuthor, incremental bool) error {
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		ex := GetExecutor(txCtx, s.db)

		if !incremental {
			if _, err := ex.ExecContext(txCtx, "DELETE FROM worklog_authors"); err != nil {
				return err
			}
		}
		if len(rows) == 0 {
			return nil
		}

		query := `
			INSERT INTO worklog_authors (jira_worklog_id, account_id)
			VALUES (:jira_worklog_id, :account_id)
			ON CONFLICT (jira_worklog_id) DO UPDATE SET
				account_id = EXCLUDED.account_id`

		_, err := sqlx.NamedExecContext(txCtx, ex, query, rows)
		return err
	})
}
