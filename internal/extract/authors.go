package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tempo_fetcher/internal/domain"
	"tempo_fetcher/internal/tempo"
)

// WorklogAuthorService joins Jira worklog ids to their authoring accounts by
// mapping them into the Tempo namespace and reading each worklog's author.
type WorklogAuthorService struct {
	tempo  TempoAPI
	jira   JiraAPI
	sink   AuthorSink
	logger *slog.Logger
}

func NewWorklogAuthorService(tapi TempoAPI, japi JiraAPI, sink AuthorSink, logger *slog.Logger) *WorklogAuthorService {
	return &WorklogAuthorService{
		tempo:  tapi,
		jira:   japi,
		sink:   sink,
		logger: logger.With("service", "worklog_authors"),
	}
}

// Run extracts author rows for worklogs updated since the boundary. A
// truncated id listing still yields the partial set; a failed id mapping
// fails the dataset (a partial mapping would silently drop authors).
func (s *WorklogAuthorService) Run(ctx context.Context, since time.Time, incremental bool) (*domain.RunStats, error) {
	startTime := time.Now()
	stats := &domain.RunStats{Dataset: domain.DatasetWorklogAuthors}

	sinceMillis := since.UnixMilli()
	jiraIDs, err := s.jira.WorklogIDsUpdatedSince(ctx, sinceMillis, nil)
	if err != nil {
		if len(jiraIDs) == 0 {
			return nil, fmt.Errorf("list jira worklog ids: %w", err)
		}
		s.logger.Warn("jira worklog id listing incomplete, continuing with partial set",
			"ids", len(jiraIDs),
			"error", err,
		)
		stats.Errors++
	}
	stats.Fetched = len(jiraIDs)

	mapped, err := s.tempo.MapWorklogIDs(ctx, jiraIDs, tempo.JiraToTempo)
	if err != nil {
		return stats, fmt.Errorf("map jira to tempo worklog ids: %w", err)
	}

	rows := make([]domain.WorklogAuthor, 0, len(mapped))
	for jiraID, tempoID := range mapped {
		author, aerr := s.tempo.WorklogAuthor(ctx, tempoID)
		if aerr != nil {
			s.logger.Warn("unable to find worklog author",
				"jira_worklog_id", jiraID,
				"tempo_worklog_id", tempoID,
				"error", aerr,
			)
			stats.Errors++
			continue
		}
		rows = append(rows, domain.WorklogAuthor{
			JiraWorklogID: jiraID,
			AccountID:     author,
		})
	}

	if err := s.sink.WriteWorklogAuthors(ctx, rows, incremental); err != nil {
		return stats, fmt.Errorf("write worklog authors: %w", err)
	}
	stats.Written = len(rows)
	stats.Duration = time.Since(startTime)

	s.logger.Info("worklog authors extracted",
		"fetched", stats.Fetched,
		"written", stats.Written,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}
