package extract

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"tempo_fetcher/internal/domain"
	"tempo_fetcher/internal/tempo"
)

// TempoAPI is the slice of the Tempo client the dataset services consume.
type TempoAPI interface {
	Teams(ctx context.Context) ([]tempo.Team, error)
	TeamMemberships(ctx context.Context, teamID int64) ([]tempo.Membership, error)
	TeamApprovals(ctx context.Context, teamID int64, from string) ([]tempo.Approval, error)
	WorklogsForApproval(ctx context.Context, selfURL string) ([]int64, error)
	WorklogsUpdatedFrom(ctx context.Context, since string, limit int) ([]tempo.Worklog, error)
	WorklogAuthor(ctx context.Context, tempoWorklogID int64) (string, error)
	MapWorklogIDs(ctx context.Context, ids []int64, dir tempo.Direction) (map[int64]int64, error)
	WorkAttributes(ctx context.Context) ([]tempo.WorkAttribute, error)
	WorklogAttributeValues(ctx context.Context, tempoWorklogIDs []int64) ([]tempo.WorklogAttributeValues, error)
}

// JiraAPI is the slice of the Jira client the dataset services consume.
type JiraAPI interface {
	WorklogIDsUpdatedSince(ctx context.Context, since int64, until *int64) ([]int64, error)
}

// Sinks own serialization of the produced row sets. The incremental flag is
// passed through untouched; a full refresh replaces the table contents.

type WorklogSink interface {
	WriteWorklogs(ctx context.Context, rows []domain.Worklog, incremental bool) error
}

type ApprovalSink interface {
	WriteApprovals(ctx context.Context, approvals []domain.Approval, joins []domain.ApprovalWorklog, incremental bool) error
}

type TeamSink interface {
	WriteTeams(ctx context.Context, teams []domain.Team, memberships []domain.TeamMembership, incremental bool) error
}

type AuthorSink interface {
	WriteWorklogAuthors(ctx context.Context, rows []domain.WorklogAuthor, incremental bool) error
}

type AttributeSink interface {
	WriteAttributeConfigs(ctx context.Context, rows []domain.AttributeConfig, incremental bool) error
	WriteWorklogAttributes(ctx context.Context, rows []domain.WorklogAttribute, incremental bool) error
}

type StateStore interface {
	Get(ctx context.Context, dataset string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type Publisher interface {
	PublishRunReport(ctx context.Context, stats *domain.RunStats) error
	Close() error
}
