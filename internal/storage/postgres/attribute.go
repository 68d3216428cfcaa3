package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tempo_fetcher/internal/domain"
)

type AttributeStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewAttributeStore(db *sqlx.DB, tm *TransactionManager) *AttributeStore {
	return &AttributeStore{db: db, tm: tm}
}

func (s *AttributeStore) WriteAttributeConfigs(ctx context.Context, rows []domain.AttributeConfig, incremental bool) error {
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		ex := GetExecutor(txCtx, s.db)

		if !incremental {
			if _, err := ex.ExecContext(txCtx, "DELETE FROM work_attribute_configs"); err != nil {
				return err
			}
		}
		if len(rows) == 0 {
			return nil
		}

		query := `
			INSERT INTO work_attribute_configs (
				attribute_key, attribute_name, attribute_type, attribute_values
			) VALUES (
				:attribute_key, :attribute_name, :attribute_type, :attribute_values
			)
			ON CONFLICT (attribute_key) DO UPDATE SET
				attribute_name = EXCLUDED.attribute_name,
				attribute_type = EXCLUDED.attribute_type,
				attribute_values = EXCLUDED.attribute_values`

		_, err := sqlx.NamedExecContext(txCtx, ex, query, rows)
		return err
	})
}

func (s *AttributeStore) WriteWorklogAttributes(ctx context.Context, rows []domain.WorklogAttribute, incremental bool) error {
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		ex := GetExecutor(txCtx, s.db)

		if !incremental {
			if _, err := ex.ExecContext(txCtx, "DELETE FROM worklog_attributes"); err != nil {
				return err
			}
		}
		if len(rows) == 0 {
			return nil
		}

		query := `
			INSERT INTO worklog_attributes (tempo_worklog_id, attribute_key, attribute_value)
			VALUES (:tempo_worklog_id, :attribute_key, :attribute_value)
			ON CONFLICT (tempo_worklog_id, attribute_key) DO UPDATE SET
				attribute_value = EXCLUDED.attribute_value`

		_, err := sqlx.NamedExecContext(txCtx, ex, query, rows)
		return err
	})
}
