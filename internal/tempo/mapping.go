package tempo

import (
	"context"
	"fmt"
)

// Direction selects which way a worklog id mapping call translates.
type Direction int

const (
	TempoToJira Direction = iota
	JiraToTempo
)

func (d Direction) String() string {
	if d == TempoToJira {
		return "tempo-to-jira"
	}
	return "jira-to-tempo"
}

// MapWorklogIDs translates worklog ids between the Tempo and Jira namespaces.
// The input is chunked to the upstream's per-call limit and each chunk is
// paginated to exhaustion; the result maps source id to target id and is
// independent of input ordering. If any page of any chunk fails past retries
// the whole call fails rather than returning a silently incomplete mapping.
func (c *Client) MapWorklogIDs(ctx context.Context, ids []int64, dir Direction) (map[int64]int64, error) {
	result := make(map[int64]int64, len(ids))

	for start := 0; start < len(ids); start += c.mapChunkSize {
		end := start + c.mapChunkSize
		if end > len(ids) {
			end = len(ids)
		}
		if err := c.mapChunk(ctx, ids[start:end], dir, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (c *Client) mapChunk(ctx context.Context, chunk []int64, dir Direction, result map[int64]int64) error {
	endpoint := fmt.Sprintf("/worklogs/%s?limit=%d", dir, c.mapChunkSize)

	var body map[string]any
	if dir == TempoToJira {
		body = map[string]any{"tempoWorklogIds": chunk}
	} else {
		body = map[string]any{"jiraWorklogIds": chunk}
	}

	raw, err := c.collectPages(ctx, endpoint, func(path string) (*Page, error) {
		return c.post(ctx, path, body)
	})
	if err != nil {
		return err
	}

	mappings, err := decodeResults[idMapping](endpoint, raw)
	if err != nil {
		return err
	}

	for _, m := range mappings {
		if dir == TempoToJira {
			result[m.TempoWorklogID] = m.JiraWorklogID
		} else {
			result[m.JiraWorklogID] = m.TempoWorklogID
		}
	}
	return nil
}
