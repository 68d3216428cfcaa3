package extract

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tempo_fetcher/internal/config"
	"tempo_fetcher/internal/domain"
	"tempo_fetcher/internal/extract/mocks"
	"tempo_fetcher/internal/tempo"
)

type RunnerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	tempoAPI  *mocks.MockTempoAPI
	jiraAPI   *mocks.MockJiraAPI
	worklogs  *mocks.MockWorklogSink
	approvals *mocks.MockApprovalSink
	teams     *mocks.MockTeamSink
	authors   *mocks.MockAuthorSink
	attrs     *mocks.MockAttributeSink
	state     *mocks.MockStateStore
	publisher *mocks.MockPublisher

	logger *slog.Logger
}

func (s *RunnerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.tempoAPI = mocks.NewMockTempoAPI(s.ctrl)
	s.jiraAPI = mocks.NewMockJiraAPI(s.ctrl)
	s.worklogs = mocks.NewMockWorklogSink(s.ctrl)
	s.approvals = mocks.NewMockApprovalSink(s.ctrl)
	s.teams = mocks.NewMockTeamSink(s.ctrl)
	s.authors = mocks.NewMockAuthorSink(s.ctrl)
	s.attrs = mocks.NewMockAttributeSink(s.ctrl)
	s.state = mocks.NewMockStateStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func (s *RunnerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRunnerTestSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}

func (s *RunnerTestSuite) newRunner(cfg config.SyncConfig) *Runner {
	return NewRunner(
		NewWorklogService(s.tempoAPI, s.worklogs, s.logger, cfg.PageLimit),
		NewApprovalService(s.tempoAPI, s.approvals, s.logger, cfg.FallbackStep),
		NewTeamService(s.tempoAPI, s.teams, s.logger),
		NewWorklogAuthorService(s.tempoAPI, s.jiraAPI, s.authors, s.logger),
		NewAttributeService(s.tempoAPI, s.attrs, s.logger, cfg.MapChunkSize),
		s.state,
		s.publisher,
		s.logger,
		cfg,
	)
}

func (s *RunnerTestSuite) expectReport(dataset string) {
	s.publisher.EXPECT().PublishRunReport(gomock.Any(), gomock.Any()).Return(nil)
	s.state.EXPECT().Get(gomock.Any(), dataset).Return(&domain.SyncState{Dataset: dataset}, nil)
	s.state.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
}

func (s *RunnerTestSuite) TestRun_FailedDatasetDoesNotStopSiblings() {
	ctx := context.Background()
	cfg := config.SyncConfig{
		Since:       "2024-01-01",
		Datasets:    []string{domain.DatasetWorklogs, domain.DatasetTeams},
		Incremental: true,
	}

	s.tempoAPI.EXPECT().WorklogsUpdatedFrom(ctx, "2024-01-01", gomock.Any()).
		Return(nil, errors.New("tempo down"))

	s.tempoAPI.EXPECT().Teams(ctx).Return([]tempo.Team{{ID: 1, Name: "Platform"}}, nil)
	s.tempoAPI.EXPECT().TeamMemberships(ctx, int64(1)).Return(nil, nil)
	s.teams.EXPECT().WriteTeams(ctx, gomock.Len(1), gomock.Len(0), true).Return(nil)
	s.expectReport(domain.DatasetTeams)

	err := s.newRunner(cfg).Run(ctx)

	s.NoError(err, "one failed dataset is not a failed run")
}

func (s *RunnerTestSuite) TestRun_AllDatasetsFailed() {
	ctx := context.Background()
	cfg := config.SyncConfig{
		Since:    "2024-01-01",
		Datasets: []string{domain.DatasetWorklogs, domain.DatasetTeams},
	}

	s.tempoAPI.EXPECT().WorklogsUpdatedFrom(ctx, "2024-01-01", gomock.Any()).
		Return(nil, errors.New("tempo down"))
	s.tempoAPI.EXPECT().Teams(ctx).Return(nil, errors.New("tempo down"))

	err := s.newRunner(cfg).Run(ctx)

	s.Error(err)
	s.Contains(err.Error(), "all 2 enabled datasets failed")
}

func (s *RunnerTestSuite) TestRun_AttributesReuseWorklogRows() {
	ctx := context.Background()
	cfg := config.SyncConfig{
		Since:       "2024-01-01",
		Datasets:    []string{domain.DatasetWorklogs, domain.DatasetWorklogAttributes},
		Incremental: true,
	}

	s.tempoAPI.EXPECT().WorklogsUpdatedFrom(ctx, "2024-01-01", gomock.Any()).
		Return([]tempo.Worklog{rawWorklog(7, "2024-01-02T10:00:00Z")}, nil)
	s.worklogs.EXPECT().WriteWorklogs(ctx, gomock.Len(1), true).Return(nil)
	s.expectReport(domain.DatasetWorklogs)

	// The attribute pass must query exactly the ids the worklog pass produced.
	s.tempoAPI.EXPECT().WorkAttributes(ctx).Return(nil, nil)
	s.attrs.EXPECT().WriteAttributeConfigs(ctx, gomock.Len(0), true).Return(nil)
	s.tempoAPI.EXPECT().WorklogAttributeValues(ctx, []int64{7}).Return(nil, nil)
	s.attrs.EXPECT().WriteWorklogAttributes(ctx, gomock.Len(0), true).Return(nil)
	s.expectReport(domain.DatasetWorklogAttributes)

	err := s.newRunner(cfg).Run(ctx)

	s.NoError(err)
}

func (s *RunnerTestSuite) TestRun_InvalidSinceDate() {
	cfg := config.SyncConfig{Since: "01.01.2024", Datasets: []string{domain.DatasetTeams}}

	err := s.newRunner(cfg).Run(context.Background())

	s.Error(err)
	s.Contains(err.Error(), "invalid 'since' date")
}

func (s *RunnerTestSuite) TestRun_StateUpdateAccumulatesRows() {
	ctx := context.Background()
	cfg := config.SyncConfig{
		Since:       "2024-01-01",
		Datasets:    []string{domain.DatasetTeams},
		Incremental: true,
	}

	s.tempoAPI.EXPECT().Teams(ctx).Return([]tempo.Team{{ID: 1}}, nil)
	s.tempoAPI.EXPECT().TeamMemberships(ctx, int64(1)).Return(nil, nil)
	s.teams.EXPECT().WriteTeams(ctx, gomock.Len(1), gomock.Len(0), true).Return(nil)

	s.publisher.EXPECT().PublishRunReport(ctx, gomock.Any()).Return(nil)
	s.state.EXPECT().Get(ctx, domain.DatasetTeams).
		Return(&domain.SyncState{Dataset: domain.DatasetTeams, TotalRows: 10}, nil)
	s.state.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, st *domain.SyncState) error {
			s.Equal(int64(11), st.TotalRows)
			s.False(st.LastRunAt.IsZero())
			return nil
		},
	)

	err := s.newRunner(cfg).Run(ctx)

	s.NoError(err)
}

func (s *RunnerTestSuite) TestRun_PublishFailureIsNotFatal() {
	ctx := context.Background()
	cfg := config.SyncConfig{
		Since:       "2024-01-01",
		Datasets:    []string{domain.DatasetTeams},
		Incremental: true,
	}

	s.tempoAPI.EXPECT().Teams(ctx).Return([]tempo.Team{{ID: 1}}, nil)
	s.tempoAPI.EXPECT().TeamMemberships(ctx, int64(1)).Return(nil, nil)
	s.teams.EXPECT().WriteTeams(ctx, gomock.Any(), gomock.Any(), true).Return(nil)

	s.publisher.EXPECT().PublishRunReport(ctx, gomock.Any()).Return(errors.New("broker down"))
	s.state.EXPECT().Get(ctx, domain.DatasetTeams).Return(&domain.SyncState{}, nil)
	s.state.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	err := s.newRunner(cfg).Run(ctx)

	s.NoError(err)
}
