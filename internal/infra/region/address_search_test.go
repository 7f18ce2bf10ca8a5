package region

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAddressSearcher(t *testing.T, handler http.HandlerFunc) *addressSearcher {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newAddressSearcher(resty.New(), server.URL+"/v1/thailand/search", logger)
}

func TestAddressSearcher_Search_PassesThroughMatches(t *testing.T) {
	const payload = `[{"district":"บางรัก","province":"กรุงเทพมหานคร","zipcode":"10500"}]`

	searcher := createTestAddressSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "บางรัก", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	})

	results, err := searcher.Search(context.Background(), "บางรัก")
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(results))
}

func TestAddressSearcher_Search_BlankQuerySkipsUpstream(t *testing.T) {
	var hits atomic.Int32
	searcher := createTestAddressSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	results, err := searcher.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(results))
	assert.Zero(t, hits.Load())
}

func TestAddressSearcher_Search_UpstreamFailure(t *testing.T) {
	searcher := createTestAddressSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := searcher.Search(context.Background(), "บางรัก")
	assert.Error(t, err)
}
