package tempo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Teams lists every Tempo team, walking all pages.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	params := url.Values{}
	params.Set("offset", "0")
	params.Set("limit", "50")

	raw, err := c.collectPages(ctx, "/teams", func(path string) (*Page, error) {
		return c.get(ctx, path, params)
	})
	if err != nil {
		return nil, err
	}
	return decodeResults[Team]("/teams", raw)
}

// TeamMemberships lists the members of one team.
func (c *Client) TeamMemberships(ctx context.Context, teamID int64) ([]Membership, error) {
	endpoint := fmt.Sprintf("/team-memberships/team/%d", teamID)
	raw, err := c.collectPages(ctx, endpoint, func(path string) (*Page, error) {
		return c.get(ctx, path, nil)
	})
	if err != nil {
		return nil, err
	}
	return decodeResults[Membership](endpoint, raw)
}

// TeamApprovals fetches the timesheet approvals of one team starting at the
// given from date (yyyy-mm-dd). The upstream returns the periods anchored at
// that date in canonical order; the first result's end boundary is what a
// period walk advances on.
func (c *Client) TeamApprovals(ctx context.Context, teamID int64, from string) ([]Approval, error) {
	endpoint := fmt.Sprintf("/timesheet-approvals/team/%d", teamID)
	params := url.Values{}
	params.Set("from", from)

	raw, err := c.collectPages(ctx, endpoint, func(path string) (*Page, error) {
		return c.get(ctx, path, params)
	})
	if err != nil {
		return nil, err
	}
	return decodeResults[Approval](endpoint, raw)
}

// WorklogsForApproval resolves the tempo worklog ids behind an approval's
// embedded worklogs self link, walking all pages.
func (c *Client) WorklogsForApproval(ctx context.Context, selfURL string) ([]int64, error) {
	first := Metadata{Next: selfURL}.NextPath(c.baseURL)
	if first == "" {
		return nil, fmt.Errorf("approval worklogs link %q is not under %s", selfURL, c.baseURL)
	}

	raw, err := c.collectPages(ctx, first, func(path string) (*Page, error) {
		return c.get(ctx, path, nil)
	})
	if err != nil {
		return nil, err
	}

	refs, err := decodeResults[worklogRef](first, raw)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(refs))
	for i, r := range refs {
		ids[i] = r.TempoWorklogID
	}
	return ids, nil
}

// WorklogsUpdatedFrom lists every worklog updated at or after since
// (yyyy-MM-dd['T'HH:mm:ss]['Z']), in upstream page order.
func (c *Client) WorklogsUpdatedFrom(ctx context.Context, since string, limit int) ([]Worklog, error) {
	params := url.Values{}
	params.Set("updatedFrom", since)
	params.Set("limit", strconv.Itoa(limit))

	raw, err := c.collectPages(ctx, "/worklogs", func(path string) (*Page, error) {
		return c.get(ctx, path, params)
	})
	if err != nil {
		return nil, err
	}
	return decodeResults[Worklog]("/worklogs", raw)
}

// WorklogAuthor returns the account id that authored one tempo worklog.
func (c *Client) WorklogAuthor(ctx context.Context, tempoWorklogID int64) (string, error) {
	endpoint := fmt.Sprintf("/worklogs/%d", tempoWorklogID)

	var wl Worklog
	err := c.retry.Do(ctx, c.logger, endpoint, func() error {
		raw, ferr := c.doRaw(ctx, "GET", endpoint, nil, nil)
		if ferr != nil {
			return ferr
		}
		if derr := json.Unmarshal(raw, &wl); derr != nil {
			return &DecodeError{Endpoint: endpoint, Err: derr}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return wl.Author.AccountID, nil
}

// WorkAttributes lists the configured work attributes, walking all pages.
func (c *Client) WorkAttributes(ctx context.Context) ([]WorkAttribute, error) {
	raw, err := c.collectPages(ctx, "/work-attributes", func(path string) (*Page, error) {
		return c.get(ctx, path, nil)
	})
	if err != nil {
		return nil, err
	}
	return decodeResults[WorkAttribute]("/work-attributes", raw)
}

// WorklogAttributeValues loads the attribute values of the given tempo
// worklogs. The endpoint takes at most 500 ids and answers with a bare JSON
// array instead of the usual page envelope.
func (c *Client) WorklogAttributeValues(ctx context.Context, tempoWorklogIDs []int64) ([]WorklogAttributeValues, error) {
	const endpoint = "/worklogs/work-attribute-values/search"
	if len(tempoWorklogIDs) > 500 {
		return nil, fmt.Errorf("%s: %d worklog ids exceed the limit of 500", endpoint, len(tempoWorklogIDs))
	}

	body := map[string]any{"tempoWorklogIds": tempoWorklogIDs}

	var out []WorklogAttributeValues
	err := c.retry.Do(ctx, c.logger, endpoint, func() error {
		raw, ferr := c.doRaw(ctx, "POST", endpoint, nil, body)
		if ferr != nil {
			return ferr
		}
		if derr := json.Unmarshal(raw, &out); derr != nil {
			return &DecodeError{Endpoint: endpoint, Err: derr}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
