package extract

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tempo_fetcher/internal/domain"
	"tempo_fetcher/internal/extract/mocks"
	"tempo_fetcher/internal/tempo"
)

type TeamServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	api  *mocks.MockTempoAPI
	sink *mocks.MockTeamSink

	service *TeamService
}

func (s *TeamServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mocks.NewMockTempoAPI(s.ctrl)
	s.sink = mocks.NewMockTeamSink(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewTeamService(s.api, s.sink, logger)
}

func (s *TeamServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}

func membership(teamID int64, accountID string) tempo.Membership {
	var m tempo.Membership
	m.Team.ID = teamID
	m.Member.AccountID = accountID
	return m
}

func (s *TeamServiceTestSuite) TestRun_TeamsAndMemberships() {
	ctx := context.Background()

	s.api.EXPECT().Teams(ctx).Return([]tempo.Team{
		{ID: 1, Name: "Platform", Lead: tempo.Account{AccountID: "lead-1"}},
		{ID: 2, Name: "Mobile", Lead: tempo.Account{AccountID: "lead-2"}},
	}, nil)
	s.api.EXPECT().TeamMemberships(ctx, int64(1)).Return([]tempo.Membership{
		membership(1, "acc-1"),
		membership(1, "acc-2"),
	}, nil)
	s.api.EXPECT().TeamMemberships(ctx, int64(2)).Return([]tempo.Membership{
		membership(2, "acc-3"),
	}, nil)

	s.sink.EXPECT().WriteTeams(ctx,
		[]domain.Team{
			{ID: 1, TeamLeadID: "lead-1", TeamName: "Platform"},
			{ID: 2, TeamLeadID: "lead-2", TeamName: "Mobile"},
		},
		[]domain.TeamMembership{
			{TeamID: 1, AccountID: "acc-1"},
			{TeamID: 1, AccountID: "acc-2"},
			{TeamID: 2, AccountID: "acc-3"},
		},
		true,
	).Return(nil)

	stats, err := s.service.Run(ctx, true)

	s.NoError(err)
	s.Equal(2, stats.Fetched)
	s.Equal(5, stats.Written)
	s.Equal(0, stats.Errors)
}

func (s *TeamServiceTestSuite) TestRun_MembershipFailureKeepsTeamRow() {
	ctx := context.Background()

	s.api.EXPECT().Teams(ctx).Return([]tempo.Team{
		{ID: 1, Name: "Platform"},
		{ID: 2, Name: "Mobile"},
	}, nil)
	s.api.EXPECT().TeamMemberships(ctx, int64(1)).Return(nil, errors.New("boom"))
	s.api.EXPECT().TeamMemberships(ctx, int64(2)).Return([]tempo.Membership{
		membership(2, "acc-3"),
	}, nil)

	s.sink.EXPECT().WriteTeams(ctx, gomock.Len(2), gomock.Len(1), true).Return(nil)

	stats, err := s.service.Run(ctx, true)

	s.NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(3, stats.Written)
}

func (s *TeamServiceTestSuite) TestRun_ListError() {
	ctx := context.Background()

	s.api.EXPECT().Teams(ctx).Return(nil, errors.New("api down"))

	stats, err := s.service.Run(ctx, true)

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "list teams")
}

func (s *TeamServiceTestSuite) TestRun_SinkError() {
	ctx := context.Background()

	s.api.EXPECT().Teams(ctx).Return([]tempo.Team{{ID: 1}}, nil)
	s.api.EXPECT().TeamMemberships(ctx, int64(1)).Return(nil, nil)
	s.sink.EXPECT().WriteTeams(ctx, gomock.Any(), gomock.Any(), true).Return(errors.New("db down"))

	stats, err := s.service.Run(ctx, true)

	s.Error(err)
	s.NotNil(stats)
	s.Contains(err.Error(), "write teams")
}
