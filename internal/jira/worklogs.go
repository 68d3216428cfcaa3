package jira

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type updatedWorklogsPage struct {
	Values []struct {
		WorklogID int64 `json:"worklogId"`
	} `json:"values"`
	Until    int64 `json:"until"`
	LastPage bool  `json:"lastPage"`
}

// WorklogIDsUpdatedSince lists the ids of worklogs updated at or after since
// (unix milliseconds), paging on the upstream-chosen until cursor. A non-nil
// until bounds the watermark: paging stops once the upstream's returned until
// passes it. Continuation failures go through the retry policy; after
// MaxConsecutiveFailures failed continuations in a row the loop aborts and
// the partial result collected so far is returned along with the error.
func (c *Client) WorklogIDsUpdatedSince(ctx context.Context, since int64, until *int64) ([]int64, error) {
	var ids []int64
	cursor := since
	failures := 0

	for {
		var page updatedWorklogsPage
		err := c.retry.Do(ctx, c.logger, "/rest/api/3/worklog/updated", func() error {
			params := url.Values{}
			params.Set("since", strconv.FormatInt(cursor, 10))
			return c.doJSON(ctx, "GET", "/rest/api/3/worklog/updated", params, nil, &page)
		})
		if err != nil {
			failures++
			if failures >= c.maxConsecutive {
				return ids, fmt.Errorf("worklog id listing abandoned after %d consecutive failures: %w", failures, err)
			}
			c.logger.Warn("worklog id page failed, continuing",
				"cursor", cursor,
				"consecutive_failures", failures,
				"error", err,
			)
			continue
		}
		failures = 0

		for _, v := range page.Values {
			ids = append(ids, v.WorklogID)
		}

		if page.LastPage || (until != nil && page.Until > *until) {
			return ids, nil
		}
		if page.Until <= cursor {
			// Upstream did not advance the cursor; bail out rather than loop.
			return ids, fmt.Errorf("worklog id cursor stuck at %d", cursor)
		}
		cursor = page.Until
	}
}
