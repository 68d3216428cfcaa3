package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tempo_fetcher/internal/domain"
	"tempo_fetcher/internal/tempo"
)

// WorklogView selects which id namespace the approval join rows carry.
type WorklogView int

const (
	// TempoWorklogs keeps the tempo-native worklog ids.
	TempoWorklogs WorklogView = iota
	// JiraWorklogs maps the ids into the tracking-system namespace through
	// the id reconciler before emitting join rows.
	JiraWorklogs
)

func (v WorklogView) dataset() string {
	if v == JiraWorklogs {
		return domain.DatasetApprovalsJira
	}
	return domain.DatasetApprovalsTempo
}

// ApprovalService walks team approval periods forward from the since boundary
// and flattens them into approval and approval-worklog rows.
type ApprovalService struct {
	tempo        TempoAPI
	sink         ApprovalSink
	logger       *slog.Logger
	fallbackStep time.Duration
	now          func() time.Time
}

func NewApprovalService(api TempoAPI, sink ApprovalSink, logger *slog.Logger, fallbackStep time.Duration) *ApprovalService {
	if fallbackStep <= 0 {
		fallbackStep = 7 * 24 * time.Hour
	}
	return &ApprovalService{
		tempo:        api,
		sink:         sink,
		logger:       logger.With("service", "approvals"),
		fallbackStep: fallbackStep,
		now:          time.Now,
	}
}

// Run extracts approvals for every team. A failing team walk is logged and
// skipped; sibling teams still run. Only a failing team listing, which leaves
// nothing to walk, fails the whole dataset.
func (s *ApprovalService) Run(ctx context.Context, since time.Time, view WorklogView, incremental bool) (*domain.RunStats, error) {
	startTime := time.Now()
	stats := &domain.RunStats{Dataset: view.dataset()}

	teams, err := s.tempo.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	var (
		approvals []domain.Approval
		joins     []domain.ApprovalWorklog
	)

	for _, team := range teams {
		periods := s.walk(ctx, team.ID, since, stats)
		stats.Fetched += len(periods)

		for _, p := range periods {
			ids, ok := s.resolveWorklogs(ctx, team.ID, p, view)
			if !ok {
				stats.Errors++
				continue
			}
			row, joinRows := flattenApproval(team.ID, p, ids)
			approvals = append(approvals, row)
			joins = append(joins, joinRows...)
		}
	}

	if err := s.sink.WriteApprovals(ctx, approvals, joins, incremental); err != nil {
		return stats, fmt.Errorf("write approvals: %w", err)
	}
	stats.Written = len(approvals)
	stats.Duration = time.Since(startTime)

	s.logger.Info("approvals extracted",
		"view", view.dataset(),
		"teams", len(teams),
		"approvals", len(approvals),
		"worklog_links", len(joins),
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}

// walk advances one team's approval window from since to now. The wall-clock
// boundary is captured once at walk start. Each step anchors the next window
// on the first returned period's end boundary; when the upstream returns
// nothing, or no parsable boundary, the cursor moves by the fallback step so
// the walk always makes forward progress. A fetch that fails past retries
// terminates the walk with the partial result collected so far.
func (s *ApprovalService) walk(ctx context.Context, teamID int64, since time.Time, stats *domain.RunStats) []tempo.Approval {
	var out []tempo.Approval
	seen := make(map[tempo.Period]struct{})

	cursor := since
	boundary := s.now()

	for cursor.Before(boundary) {
		from := cursor.Format("2006-01-02")

		periods, err := s.tempo.TeamApprovals(ctx, teamID, from)
		if err != nil {
			s.logger.Warn("approval walk terminated early",
				"team_id", teamID,
				"from", from,
				"error", err,
			)
			stats.Errors++
			return out
		}

		for _, p := range periods {
			if _, dup := seen[p.Period]; dup {
				continue
			}
			seen[p.Period] = struct{}{}
			out = append(out, p)
		}

		if len(periods) > 0 {
			if to, perr := time.Parse("2006-01-02", periods[0].Period.To); perr == nil {
				next := to.AddDate(0, 0, 1)
				if next.After(cursor) {
					cursor = next
					continue
				}
			}
		}
		cursor = cursor.Add(s.fallbackStep)
	}

	return out
}

// resolveWorklogs loads the worklog ids behind one approval and, in the jira
// view, maps them into the tracking-system namespace. A failed resolution or
// a failed mapping skips the whole approval rather than emitting an
// incomplete join set. Ids with no counterpart in the target system are
// dropped individually and logged.
func (s *ApprovalService) resolveWorklogs(ctx context.Context, teamID int64, a tempo.Approval, view WorklogView) ([]int64, bool) {
	if a.Worklogs.Self == "" {
		return nil, true
	}

	tempoIDs, err := s.tempo.WorklogsForApproval(ctx, a.Worklogs.Self)
	if err != nil {
		s.logger.Warn("failed to resolve approval worklogs",
			"team_id", teamID,
			"period_start", a.Period.From,
			"error", err,
		)
		return nil, false
	}

	if view == TempoWorklogs {
		return tempoIDs, true
	}

	mapped, err := s.tempo.MapWorklogIDs(ctx, tempoIDs, tempo.TempoToJira)
	if err != nil {
		s.logger.Warn("failed to map worklog ids",
			"team_id", teamID,
			"period_start", a.Period.From,
			"error", err,
		)
		return nil, false
	}

	jiraIDs := make([]int64, 0, len(tempoIDs))
	for _, tid := range tempoIDs {
		jid, found := mapped[tid]
		if !found {
			s.logger.Warn("tempo worklog has no jira counterpart, dropping",
				"tempo_worklog_id", tid,
				"team_id", teamID,
			)
			continue
		}
		jiraIDs = append(jiraIDs, jid)
	}
	return jiraIDs, true
}
