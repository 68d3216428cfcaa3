package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tempo_fetcher/internal/domain"
)

// AttributeService extracts work attribute configurations and the attribute
// values attached to a given set of worklogs.
type AttributeService struct {
	tempo     TempoAPI
	sink      AttributeSink
	logger    *slog.Logger
	chunkSize int
}

func NewAttributeService(api TempoAPI, sink AttributeSink, logger *slog.Logger, chunkSize int) *AttributeService {
	if chunkSize <= 0 || chunkSize > 500 {
		chunkSize = 500
	}
	return &AttributeService{
		tempo:     api,
		sink:      sink,
		logger:    logger.With("service", "worklog_attributes"),
		chunkSize: chunkSize,
	}
}

// Run extracts the attribute configs and, for the provided worklog rows, the
// attribute values. Value lookups are chunked to the upstream's per-call
// limit; a failed chunk is skipped and counted, siblings continue.
func (s *AttributeService) Run(ctx context.Context, worklogs []domain.Worklog, incremental bool) (*domain.RunStats, error) {
	startTime := time.Now()
	stats := &domain.RunStats{Dataset: domain.DatasetWorklogAttributes}

	configs, err := s.tempo.WorkAttributes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list work attributes: %w", err)
	}

	configRows := make([]domain.AttributeConfig, 0, len(configs))
	for _, c := range configs {
		values := ""
		if len(c.Values) > 0 {
			values = string(c.Values)
		}
		configRows = append(configRows, domain.AttributeConfig{
			Key:    c.Key,
			Name:   c.Name,
			Type:   c.Type,
			Values: values,
		})
	}

	if err := s.sink.WriteAttributeConfigs(ctx, configRows, incremental); err != nil {
		return stats, fmt.Errorf("write attribute configs: %w", err)
	}

	ids := make([]int64, len(worklogs))
	for i, wl := range worklogs {
		ids[i] = wl.TempoID
	}
	stats.Fetched = len(ids)

	var valueRows []domain.WorklogAttribute
	for start := 0; start < len(ids); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(ids) {
			end = len(ids)
		}

		batch, berr := s.tempo.WorklogAttributeValues(ctx, ids[start:end])
		if berr != nil {
			s.logger.Warn("attribute value batch failed, skipping",
				"offset", start,
				"size", end-start,
				"error", berr,
			)
			stats.Errors++
			continue
		}

		for _, wl := range batch {
			for _, attr := range wl.WorkAttributeValues {
				valueRows = append(valueRows, domain.WorklogAttribute{
					TempoWorklogID: wl.TempoWorklogID,
					Key:            attr.Key,
					Value:          attr.Value,
				})
			}
		}
	}

	if err := s.sink.WriteWorklogAttributes(ctx, valueRows, incremental); err != nil {
		return stats, fmt.Errorf("write worklog attributes: %w", err)
	}
	stats.Written = len(configRows) + len(valueRows)
	stats.Duration = time.Since(startTime)

	s.logger.Info("worklog attributes extracted",
		"configs", len(configRows),
		"values", len(valueRows),
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}
