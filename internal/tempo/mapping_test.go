package tempo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo_fetcher/internal/retry"
)

// jiraIDOffset keeps fixture mappings bijective so round trips are checkable.
const jiraIDOffset = int64(100000)

func mappingServer(t *testing.T, requests *[]mappingRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var body struct {
			TempoWorklogIDs []int64 `json:"tempoWorklogIds"`
			JiraWorklogIDs  []int64 `json:"jiraWorklogIds"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		var mappings []idMapping
		switch r.URL.Path {
		case "/worklogs/tempo-to-jira":
			*requests = append(*requests, mappingRequest{path: r.URL.Path, ids: body.TempoWorklogIDs})
			for _, id := range body.TempoWorklogIDs {
				mappings = append(mappings, idMapping{TempoWorklogID: id, JiraWorklogID: id + jiraIDOffset})
			}
		case "/worklogs/jira-to-tempo":
			*requests = append(*requests, mappingRequest{path: r.URL.Path, ids: body.JiraWorklogIDs})
			for _, id := range body.JiraWorklogIDs {
				mappings = append(mappings, idMapping{TempoWorklogID: id - jiraIDOffset, JiraWorklogID: id})
			}
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		raws := make([]json.RawMessage, len(mappings))
		for i, m := range mappings {
			b, _ := json.Marshal(m)
			raws[i] = b
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results":  raws,
			"metadata": map[string]any{"count": len(raws), "total": len(raws)},
		})
	}))
}

type mappingRequest struct {
	path string
	ids  []int64
}

func TestMapWorklogIDs_RoundTrip(t *testing.T) {
	var requests []mappingRequest
	srv := mappingServer(t, &requests)
	defer srv.Close()

	c := testClient(srv.URL)
	ids := []int64{11, 22, 33}

	forward, err := c.MapWorklogIDs(context.Background(), ids, TempoToJira)
	require.NoError(t, err)
	require.Len(t, forward, 3)
	assert.Equal(t, int64(11+jiraIDOffset), forward[11])

	jiraIDs := make([]int64, 0, len(forward))
	for _, jid := range forward {
		jiraIDs = append(jiraIDs, jid)
	}

	back, err := c.MapWorklogIDs(context.Background(), jiraIDs, JiraToTempo)
	require.NoError(t, err)

	recovered := make([]int64, 0, len(back))
	for _, tid := range back {
		recovered = append(recovered, tid)
	}
	assert.ElementsMatch(t, ids, recovered)
}

func TestMapWorklogIDs_ChunksInput(t *testing.T) {
	var requests []mappingRequest
	srv := mappingServer(t, &requests)
	defer srv.Close()

	c := New(Config{
		BaseURL:      srv.URL,
		APIToken:     "t",
		Timeout:      time.Second,
		Retry:        retry.Policy{MaxAttempts: 1},
		MapChunkSize: 2,
	}, testLogger())

	result, err := c.MapWorklogIDs(context.Background(), []int64{1, 2, 3, 4, 5}, TempoToJira)

	require.NoError(t, err)
	assert.Len(t, result, 5)
	require.Len(t, requests, 3)
	assert.Equal(t, []int64{1, 2}, requests[0].ids)
	assert.Equal(t, []int64{3, 4}, requests[1].ids)
	assert.Equal(t, []int64{5}, requests[2].ids)
}

func TestMapWorklogIDs_EmptyInput(t *testing.T) {
	var requests []mappingRequest
	srv := mappingServer(t, &requests)
	defer srv.Close()

	result, err := testClient(srv.URL).MapWorklogIDs(context.Background(), nil, TempoToJira)

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Empty(t, requests, "no upstream call for an empty id set")
}

func TestMapWorklogIDs_FailedChunkFailsCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results":  []any{idMapping{TempoWorklogID: 1, JiraWorklogID: 1 + jiraIDOffset}},
			"metadata": map[string]any{"count": 1, "total": 1},
		})
	}))
	defer srv.Close()

	c := New(Config{
		BaseURL:      srv.URL,
		APIToken:     "t",
		Timeout:      time.Second,
		Retry:        retry.Policy{MaxAttempts: 1},
		MapChunkSize: 1,
	}, testLogger())

	result, err := c.MapWorklogIDs(context.Background(), []int64{1, 2}, TempoToJira)

	require.Error(t, err)
	assert.Nil(t, result, "a partially mapped result must not leak")
}
