package extract

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"tempo_fetcher/internal/domain"
	"tempo_fetcher/internal/tempo"
)

const utcTimestampLayout = "2006-01-02T15:04:05.000Z"

// ApprovalID derives the surrogate key of an approval period. Tempo issues no
// identifier for these records, so the key is a collision-resistant hash of
// (team id, period start, period end), folded to a positive int64. The same
// inputs always yield the same id, which makes re-extraction an idempotent
// upsert downstream.
func ApprovalID(teamID int64, periodStart, periodEnd string) int64 {
	sum := sha256.Sum256(fmt.Appendf(nil, "%d;%s;%s", teamID, periodStart, periodEnd))
	return int64(binary.BigEndian.Uint64(sum[:8]) & math.MaxInt64)
}

// flattenApproval converts one raw approval plus its resolved worklog ids
// into one approval row and N join rows. Pure function, no I/O.
func flattenApproval(teamID int64, a tempo.Approval, worklogIDs []int64) (domain.Approval, []domain.ApprovalWorklog) {
	id := ApprovalID(teamID, a.Period.From, a.Period.To)

	row := domain.Approval{
		ID:          id,
		TeamID:      teamID,
		PeriodStart: a.Period.From,
		PeriodEnd:   a.Period.To,
		AccountID:   a.User.AccountID,
		Status:      a.Status.Key,
	}

	joins := make([]domain.ApprovalWorklog, len(worklogIDs))
	for i, wid := range worklogIDs {
		joins[i] = domain.ApprovalWorklog{ApprovalID: id, WorklogID: wid}
	}
	return row, joins
}

// NormalizeTimestamp renders an upstream timestamp in the fixed
// yyyy-MM-ddTHH:mm:ss.000Z form. Some responses carry one combined field,
// others split date and time; either shape normalizes to the same output.
func NormalizeTimestamp(combined, date, clock string) (string, error) {
	if combined != "" {
		for _, layout := range []string{
			utcTimestampLayout,
			"2006-01-02T15:04:05Z",
			time.RFC3339,
			"2006-01-02 15:04:05",
		} {
			if t, err := time.Parse(layout, combined); err == nil {
				return t.UTC().Format(utcTimestampLayout), nil
			}
		}
		return "", fmt.Errorf("unparsable timestamp %q", combined)
	}

	if date == "" {
		return "", fmt.Errorf("timestamp has neither combined nor date field")
	}
	if clock == "" {
		clock = "00:00:00"
	}
	t, err := time.Parse("2006-01-02T15:04:05", date+"T"+clock)
	if err != nil {
		return "", fmt.Errorf("unparsable date %q time %q: %w", date, clock, err)
	}
	return t.Format(utcTimestampLayout), nil
}

// flattenWorklog converts one raw Tempo worklog into a flat row.
func flattenWorklog(wl tempo.Worklog) (domain.Worklog, error) {
	start, err := NormalizeTimestamp(wl.StartDateTimeUTC, wl.StartDate, wl.StartTime)
	if err != nil {
		return domain.Worklog{}, fmt.Errorf("worklog %d start: %w", wl.TempoWorklogID, err)
	}
	created, err := NormalizeTimestamp(wl.CreatedAt, "", "")
	if err != nil {
		return domain.Worklog{}, fmt.Errorf("worklog %d created: %w", wl.TempoWorklogID, err)
	}
	updated, err := NormalizeTimestamp(wl.UpdatedAt, "", "")
	if err != nil {
		return domain.Worklog{}, fmt.Errorf("worklog %d updated: %w", wl.TempoWorklogID, err)
	}

	return domain.Worklog{
		TempoID:          wl.TempoWorklogID,
		IssueID:          wl.Issue.ID,
		AuthorAccountID:  wl.Author.AccountID,
		StartDateTimeUTC: start,
		TimeSpentSeconds: wl.TimeSpentSeconds,
		Created:          created,
		Updated:          updated,
	}, nil
}
