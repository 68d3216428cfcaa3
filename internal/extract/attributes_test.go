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

type AttributeServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	api  *mocks.MockTempoAPI
	sink *mocks.MockAttributeSink

	service *AttributeService
}

func (s *AttributeServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mocks.NewMockTempoAPI(s.ctrl)
	s.sink = mocks.NewMockAttributeSink(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewAttributeService(s.api, s.sink, logger, 2)
}

func (s *AttributeServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAttributeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttributeServiceTestSuite))
}

func worklogRows(ids ...int64) []domain.Worklog {
	rows := make([]domain.Worklog, len(ids))
	for i, id := range ids {
		rows[i] = domain.Worklog{TempoID: id}
	}
	return rows
}

func (s *AttributeServiceTestSuite) TestRun_ConfigsAndValues() {
	ctx := context.Background()

	s.api.EXPECT().WorkAttributes(ctx).Return([]tempo.WorkAttribute{
		{Key: "_Billable_", Name: "Billable", Type: "CHECKBOX"},
		{Key: "_Category_", Name: "Category", Type: "STATIC_LIST", Values: []byte(`["DEV","OPS"]`)},
	}, nil)

	s.sink.EXPECT().WriteAttributeConfigs(ctx, []domain.AttributeConfig{
		{Key: "_Billable_", Name: "Billable", Type: "CHECKBOX"},
		{Key: "_Category_", Name: "Category", Type: "STATIC_LIST", Values: `["DEV","OPS"]`},
	}, true).Return(nil)

	// chunk size 2: [1,2] then [3]
	s.api.EXPECT().WorklogAttributeValues(ctx, []int64{1, 2}).Return([]tempo.WorklogAttributeValues{
		{TempoWorklogID: 1, WorkAttributeValues: []tempo.AttributeValue{
			{Key: "_Billable_", Value: "true"},
			{Key: "_Category_", Value: "DEV"},
		}},
	}, nil)
	s.api.EXPECT().WorklogAttributeValues(ctx, []int64{3}).Return([]tempo.WorklogAttributeValues{
		{TempoWorklogID: 3, WorkAttributeValues: []tempo.AttributeValue{
			{Key: "_Billable_", Value: "false"},
		}},
	}, nil)

	s.sink.EXPECT().WriteWorklogAttributes(ctx, []domain.WorklogAttribute{
		{TempoWorklogID: 1, Key: "_Billable_", Value: "true"},
		{TempoWorklogID: 1, Key: "_Category_", Value: "DEV"},
		{TempoWorklogID: 3, Key: "_Billable_", Value: "false"},
	}, true).Return(nil)

	stats, err := s.service.Run(ctx, worklogRows(1, 2, 3), true)

	s.NoError(err)
	s.Equal(3, stats.Fetched)
	s.Equal(5, stats.Written)
	s.Equal(0, stats.Errors)
}

func (s *AttributeServiceTestSuite) TestRun_FailedChunkIsSkipped() {
	ctx := context.Background()

	s.api.EXPECT().WorkAttributes(ctx).Return(nil, nil)
	s.sink.EXPECT().WriteAttributeConfigs(ctx, gomock.Len(0), true).Return(nil)

	s.api.EXPECT().WorklogAttributeValues(ctx, []int64{1, 2}).Return(nil, errors.New("boom"))
	s.api.EXPECT().WorklogAttributeValues(ctx, []int64{3}).Return([]tempo.WorklogAttributeValues{
		{TempoWorklogID: 3, WorkAttributeValues: []tempo.AttributeValue{
			{Key: "_Billable_", Value: "true"},
		}},
	}, nil)

	s.sink.EXPECT().WriteWorklogAttributes(ctx, gomock.Len(1), true).Return(nil)

	stats, err := s.service.Run(ctx, worklogRows(1, 2, 3), true)

	s.NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(1, stats.Written)
}

func (s *AttributeServiceTestSuite) TestRun_NoWorklogs() {
	ctx := context.Background()

	s.api.EXPECT().WorkAttributes(ctx).Return([]tempo.WorkAttribute{
		{Key: "_Billable_", Name: "Billable", Type: "CHECKBOX"},
	}, nil)
	s.sink.EXPECT().WriteAttributeConfigs(ctx, gomock.Len(1), true).Return(nil)
	s.sink.EXPECT().WriteWorklogAttributes(ctx, gomock.Len(0), true).Return(nil)

	stats, err := s.service.Run(ctx, nil, true)

	s.NoError(err)
	s.Equal(0, stats.Fetched)
	s.Equal(1, stats.Written)
}

func (s *AttributeServiceTestSuite) TestRun_ConfigListingFails() {
	ctx := context.Background()

	s.api.EXPECT().WorkAttributes(ctx).Return(nil, errors.New("api down"))

	stats, err := s.service.Run(ctx, worklogRows(1), true)

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "list work attributes")
}
