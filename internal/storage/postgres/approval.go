package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tempo_fetcher/internal/domain"
)

type ApprovalStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewApprovalStore(db *sqlx.DB, tm *TransactionManager) *ApprovalStore {
	return &ApprovalStore{db: db, tm: tm}
}

// WriteApprovals upserts approval rows and replaces the join rows of exactly
// the approvals being written, all in one transaction. Surrogate ids are
// stable across runs, so re-extraction lands on the same rows.
func (s *ApprovalStore) WriteApprovals(ctx context.Context, approvals []domain.Approval, joins []domain.ApprovalWorklog, incremental bool) error {
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		ex := GetExecutor(txCtx, s.db)

		if !incremental {
			if _, err := ex.ExecContext(txCtx, "DELETE FROM approval_worklogs"); err != nil {
				return err
			}
			if _, err := ex.ExecContext(txCtx, "DELETE FROM approvals"); err != nil {
				return err
			}
		}
		if len(approvals) == 0 {
			return nil
		}

		query := `
			INSERT INTO approvals (
				id, team_id, period_start, period_end, account_id, status
			) VALUES (
				:id, :team_id, :period_start, :period_end, :account_id, :status
			)
			ON CONFLICT (id) DO UPDATE SET
				team_id = EXCLUDED.team_id,
				period_start = EXCLUDED.period_start,
				period_end = EXCLUDED.period_end,
				account_id = EXCLUDED.account_id,
				status = EXCLUDED.status`

		if _, err := sqlx.NamedExecContext(txCtx, ex, query, approvals); err != nil {
			return err
		}

		approvalIDs := make([]int64, len(approvals))
		for i, a := range approvals {
			approvalIDs[i] = a.ID
		}
		if _, err := ex.ExecContext(txCtx,
			"DELETE FROM approval_worklogs WHERE approval_id = ANY($1)",
			pq.Array(approvalIDs),
		); err != nil {
			return err
		}

		if len(joins) == 0 {
			return nil
		}
		_, err := sqlx.NamedExecContext(txCtx, ex, `
			INSERT INTO approval_worklogs (approval_id, worklog_id)
			VALUES (:approval_id, :worklog_id)
			ON CONFLICT DO NOTHING`, joins)
		return err
	})
}
