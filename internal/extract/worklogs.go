package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tempo_fetcher/internal/domain"
)

// WorklogService extracts worklogs updated since the given boundary.
type WorklogService struct {
	tempo     TempoAPI
	sink      WorklogSink
	logger    *slog.Logger
	pageLimit int
}

func NewWorklogService(api TempoAPI, sink WorklogSink, logger *slog.Logger, pageLimit int) *WorklogService {
	if pageLimit <= 0 {
		pageLimit = 5000
	}
	return &WorklogService{
		tempo:     api,
		sink:      sink,
		logger:    logger.With("service", "worklogs"),
		pageLimit: pageLimit,
	}
}

// Run fetches and flattens every worklog updated at or after since. Rows
// whose timestamps cannot be normalized are counted and skipped, not fatal.
// The flattened rows are returned so the attribute extraction can reuse them
// without a second upstream pass.
func (s *WorklogService) Run(ctx context.Context, since time.Time, incremental bool) ([]domain.Worklog, *domain.RunStats, error) {
	startTime := time.Now()
	stats := &domain.RunStats{Dataset: domain.DatasetWorklogs}

	raw, err := s.tempo.WorklogsUpdatedFrom(ctx, since.Format("2006-01-02"), s.pageLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch worklogs: %w", err)
	}
	stats.Fetched = len(raw)

	rows := make([]domain.Worklog, 0, len(raw))
	for _, wl := range raw {
		row, ferr := flattenWorklog(wl)
		if ferr != nil {
			s.logger.Warn("skipping worklog", "error", ferr)
			stats.Errors++
			continue
		}
		rows = append(rows, row)
	}

	if err := s.sink.WriteWorklogs(ctx, rows, incremental); err != nil {
		return rows, stats, fmt.Errorf("write worklogs: %w", err)
	}
	stats.Written = len(rows)
	stats.Duration = time.Since(startTime)

	s.logger.Info("worklogs extracted",
		"fetched", stats.Fetched,
		"written", stats.Written,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return rows, stats, nil
}
