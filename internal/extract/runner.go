package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tempo_fetcher/internal/config"
	"tempo_fetcher/internal/domain"
)

// Runner executes the enabled dataset extractions in a fixed order and
// reports each run. One failed dataset does not stop the others; the run as
// a whole errors only when every enabled dataset failed.
type Runner struct {
	worklogs   *WorklogService
	approvals  *ApprovalService
	teams      *TeamService
	authors    *WorklogAuthorService
	attributes *AttributeService
	state      StateStore
	publisher  Publisher
	logger     *slog.Logger
	cfg        config.SyncConfig
}

func NewRunner(
	worklogs *WorklogService,
	approvals *ApprovalService,
	teams *TeamService,
	authors *WorklogAuthorService,
	attributes *AttributeService,
	state StateStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *Runner {
	return &Runner{
		worklogs:   worklogs,
		approvals:  approvals,
		teams:      teams,
		authors:    authors,
		attributes: attributes,
		state:      state,
		publisher:  publisher,
		logger:     logger.With("component", "runner"),
		cfg:        cfg,
	}
}

// Run executes one full extraction pass against the configured since
// boundary.
func (r *Runner) Run(ctx context.Context) error {
	since, err := r.cfg.SinceDate()
	if err != nil {
		return err
	}

	r.logger.Info("starting extraction pass",
		"since", r.cfg.Since,
		"datasets", r.cfg.Datasets,
		"incremental", r.cfg.Incremental,
	)

	ran, failed := 0, 0

	if r.cfg.Enabled(domain.DatasetWorklogAuthors) {
		ran++
		stats, rerr := r.authors.Run(ctx, since, r.cfg.Incremental)
		if r.report(ctx, domain.DatasetWorklogAuthors, stats, rerr) {
			failed++
		}
	}

	var worklogRows []domain.Worklog
	if r.cfg.Enabled(domain.DatasetWorklogs) {
		ran++
		rows, stats, rerr := r.worklogs.Run(ctx, since, r.cfg.Incremental)
		worklogRows = rows
		if r.report(ctx, domain.DatasetWorklogs, stats, rerr) {
			failed++
		}
	}

	if r.cfg.Enabled(domain.DatasetWorklogs) && r.cfg.Enabled(domain.DatasetWorklogAttributes) {
		ran++
		stats, rerr := r.attributes.Run(ctx, worklogRows, r.cfg.Incremental)
		if r.report(ctx, domain.DatasetWorklogAttributes, stats, rerr) {
			failed++
		}
	}

	if r.cfg.Enabled(domain.DatasetApprovalsJira) {
		ran++
		stats, rerr := r.approvals.Run(ctx, since, JiraWorklogs, r.cfg.Incremental)
		if r.report(ctx, domain.DatasetApprovalsJira, stats, rerr) {
			failed++
		}
	}

	if r.cfg.Enabled(domain.DatasetApprovalsTempo) {
		ran++
		stats, rerr := r.approvals.Run(ctx, since, TempoWorklogs, r.cfg.Incremental)
		if r.report(ctx, domain.DatasetApprovalsTempo, stats, rerr) {
			failed++
		}
	}

	if r.cfg.Enabled(domain.DatasetTeams) {
		ran++
		stats, rerr := r.teams.Run(ctx, r.cfg.Incremental)
		if r.report(ctx, domain.DatasetTeams, stats, rerr) {
			failed++
		}
	}

	if ran > 0 && failed == ran {
		return fmt.Errorf("all %d enabled datasets failed", ran)
	}
	return nil
}

// report logs and publishes one dataset's outcome and updates its sync
// state. It returns true when the dataset failed.
func (r *Runner) report(ctx context.Context, dataset string, stats *domain.RunStats, err error) bool {
	if err != nil {
		r.logger.Error("dataset extraction failed", "dataset", dataset, "error", err)
	}
	if stats == nil {
		return err != nil
	}

	if r.publisher != nil {
		if perr := r.publisher.PublishRunReport(ctx, stats); perr != nil {
			r.logger.Warn("failed to publish run report", "dataset", dataset, "error", perr)
		}
	}

	if r.state != nil {
		state, serr := r.state.Get(ctx, dataset)
		if serr != nil {
			r.logger.Warn("failed to load sync state", "dataset", dataset, "error", serr)
			return err != nil
		}
		state.Dataset = dataset
		state.LastRunAt = time.Now()
		state.TotalRows += int64(stats.Written)
		if serr := r.state.Update(ctx, state); serr != nil {
			r.logger.Warn("failed to update sync state", "dataset", dataset, "error", serr)
		}
	}

	return err != nil
}
