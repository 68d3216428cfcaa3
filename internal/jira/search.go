package jira

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
)

const searchPageSize = 100

// Issue is one Jira issue with its raw field payload.
type Issue struct {
	ID     string          `json:"id"`
	Key    string          `json:"key"`
	Fields json.RawMessage `json:"fields"`
}

type User struct {
	AccountID    string `json:"accountId"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	Active       bool   `json:"active"`
}

type searchPage struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// Issue fetches a single issue by key with all fields.
func (c *Client) Issue(ctx context.Context, key string) (*Issue, error) {
	if key == "" {
		return nil, errors.New("empty issue key")
	}
	endpoint := "/rest/api/3/issue/" + url.PathEscape(key)
	params := url.Values{}
	params.Set("fields", "*all")

	var issue Issue
	err := c.retry.Do(ctx, c.logger, endpoint, func() error {
		return c.doJSON(ctx, "GET", endpoint, params, nil, &issue)
	})
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// User fetches a Jira user by account id.
func (c *Client) User(ctx context.Context, accountID string) (*User, error) {
	if accountID == "" {
		return nil, errors.New("empty account id")
	}
	params := url.Values{}
	params.Set("accountId", accountID)

	var user User
	err := c.retry.Do(ctx, c.logger, "/rest/api/3/user", func() error {
		return c.doJSON(ctx, "GET", "/rest/api/3/user", params, nil, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Search runs a JQL query and returns all matching issues in upstream page
// order, paging with startAt/maxResults.
func (c *Client) Search(ctx context.Context, jql string) ([]Issue, error) {
	if jql == "" {
		return nil, errors.New("empty jql")
	}

	var issues []Issue
	startAt := 0
	for {
		page, err := c.searchPage(ctx, jql, startAt)
		if err != nil {
			return nil, err
		}
		issues = append(issues, page.Issues...)
		startAt += len(page.Issues)
		if len(page.Issues) == 0 || startAt >= page.Total {
			return issues, nil
		}
	}
}

// SearchPooled runs a JQL query fetching up to workers pages concurrently.
// Issues come back in completion order, NOT page order; only use this where
// downstream processing does not depend on ordering.
func (c *Client) SearchPooled(ctx context.Context, jql string, workers int) ([]Issue, error) {
	if jql == "" {
		return nil, errors.New("empty jql")
	}
	if workers <= 0 {
		workers = 5
	}

	first, err := c.searchPage(ctx, jql, 0)
	if err != nil {
		return nil, err
	}

	issues := first.Issues
	if len(issues) >= first.Total {
		return issues, nil
	}

	var offsets []int
	for startAt := len(first.Issues); startAt < first.Total; startAt += searchPageSize {
		offsets = append(offsets, startAt)
	}

	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	sem := make(chan struct{}, workers)

	for _, startAt := range offsets {
		wg.Add(1)
		sem <- struct{}{}
		go func(startAt int) {
			defer wg.Done()
			defer func() { <-sem }()

			page, perr := c.searchPage(ctx, jql, startAt)

			mu.Lock()
			defer mu.Unlock()
			if perr != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("search page at %d: %w", startAt, perr)
				}
				return
			}
			issues = append(issues, page.Issues...)
		}(startAt)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return issues, nil
}

func (c *Client) searchPage(ctx context.Context, jql string, startAt int) (*searchPage, error) {
	params := url.Values{}
	params.Set("jql", jql)
	params.Set("startAt", strconv.Itoa(startAt))
	params.Set("maxResults", strconv.Itoa(searchPageSize))
	params.Set("fields", "*all")

	var page searchPage
	err := c.retry.Do(ctx, c.logger, "/rest/api/3/search", func() error {
		return c.doJSON(ctx, "GET", "/rest/api/3/search", params, nil, &page)
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}
