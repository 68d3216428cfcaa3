package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tempo_fetcher/internal/domain"
)

// TeamService extracts teams and their memberships.
type TeamService struct {
	tempo  TempoAPI
	sink   TeamSink
	logger *slog.Logger
}

func NewTeamService(api TempoAPI, sink TeamSink, logger *slog.Logger) *TeamService {
	return &TeamService{
		tempo:  api,
		sink:   sink,
		logger: logger.With("service", "teams"),
	}
}

// Run lists every team and the members of each. A failing membership fetch
// skips that team's membership rows only; the team row itself is kept.
func (s *TeamService) Run(ctx context.Context, incremental bool) (*domain.RunStats, error) {
	startTime := time.Now()
	stats := &domain.RunStats{Dataset: domain.DatasetTeams}

	teams, err := s.tempo.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	stats.Fetched = len(teams)

	teamRows := make([]domain.Team, 0, len(teams))
	var membershipRows []domain.TeamMembership

	for _, t := range teams {
		teamRows = append(teamRows, domain.Team{
			ID:         t.ID,
			TeamLeadID: t.Lead.AccountID,
			TeamName:   t.Name,
		})

		memberships, merr := s.tempo.TeamMemberships(ctx, t.ID)
		if merr != nil {
			s.logger.Warn("failed to load team memberships",
				"team_id", t.ID,
				"error", merr,
			)
			stats.Errors++
			continue
		}
		for _, m := range memberships {
			membershipRows = append(membershipRows, domain.TeamMembership{
				TeamID:    m.Team.ID,
				AccountID: m.Member.AccountID,
			})
		}
	}

	if err := s.sink.WriteTeams(ctx, teamRows, membershipRows, incremental); err != nil {
		return stats, fmt.Errorf("write teams: %w", err)
	}
	stats.Written = len(teamRows) + len(membershipRows)
	stats.Duration = time.Since(startTime)

	s.logger.Info("teams extracted",
		"teams", len(teamRows),
		"memberships", len(membershipRows),
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}
