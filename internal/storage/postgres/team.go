package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tempo_fetcher/internal/domain"
)

type TeamStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewTeamStore(db *sqlx.DB, tm *TransactionManager) *TeamStore {
	return &TeamStore{db: db, tm: tm}
}

// WriteTeams upserts team rows and replaces the membership rows of the teams
// being written in one transaction.
func (s *TeamStore) WriteTeams(ctx context.Context, teams []domain.Team, memberships []domain.TeamMembership, incremental bool) error {
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		ex := GetExecutor(txCtx, s.db)

		if !incremental {
			if _, err := ex.ExecContext(txCtx, "DELETE FROM team_membership"); err != nil {
				return err
			}
			if _, err := ex.ExecContext(txCtx, "DELETE FROM teams"); err != nil {
				return err
			}
		}
		if len(teams) == 0 {
			return nil
		}

		query := `
			INSERT INTO teams (id, team_lead_id, team_name)
			VALUES (:id, :team_lead_id, :team_name)
			ON CONFLICT (id) DO UPDATE SET
				team_lead_id = EXCLUDED.team_lead_id,
				team_name = EXCLUDED.team_name`

		if _, err := sqlx.NamedExecContext(txCtx, ex, query, teams); err != nil {
			return err
		}

		teamIDs := make([]int64, len(teams))
		for i, t := range teams {
			teamIDs[i] = t.ID
		}
		if _, err := ex.ExecContext(txCtx,
			"DELETE FROM team_membership WHERE team_id = ANY($1)",
			pq.Array(teamIDs),
		); err != nil {
			return err
		}

		if len(memberships) == 0 {
			return nil
		}
		_, err := sqlx.NamedExecContext(txCtx, ex, `
			INSERT INTO team_membership (team_id, account_id)
			VALUES (:team_id, :account_id)
			ON CONFLICT DO NOTHING`, memberships)
		return err
	})
}
