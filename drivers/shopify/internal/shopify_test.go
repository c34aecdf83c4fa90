package driver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datazip-inc/source-shopify/pkg/rest"
	"github.com/datazip-inc/source-shopify/types"
)

func newTestDriver(serverURL string) *Shopify {
	return &Shopify{
		config: &Config{Shop: "test", APIPassword: "token", StartDate: "2021-01-01"},
		client: rest.NewClient(serverURL+"/", "token",
			rest.WithRetry(0, time.Millisecond),
			rest.WithLimiter(rest.NewLimiter(10000)),
		),
		state:     types.NewState(),
		tempState: types.NewTempState(),
	}
}

func configuredStream(name string) *types.ConfiguredStream {
	descriptor, _ := descriptorFor(name)
	cfg := descriptor.AsStream().Wrap()
	cfg.SyncMode = types.INCREMENTAL
	return cfg
}

func collectRecords(t *testing.T, s *Shopify, stream *types.ConfiguredStream) []types.Record {
	t.Helper()

	var records []types.Record
	err := s.Read(context.Background(), stream, func(record types.Record) error {
		records = append(records, record)
		return nil
	})
	require.NoError(t, err)
	return records
}

func TestReadPaginatesUntilExhaustion(t *testing.T) {
	var firstPageQuery, secondPageQuery map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("/orders.json", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("page_info") == "" {
			firstPageQuery = query
			w.Header().Set("Link", fmt.Sprintf(`<http://%s/orders.json?page_info=p2&limit=250>; rel="next"`, r.Host))
			fmt.Fprint(w, `{"orders":[{"id":1,"updated_at":"2021-02-01T00:00:00Z"}]}`)
			return
		}
		secondPageQuery = query
		fmt.Fprint(w, `{"orders":[{"id":2,"updated_at":"2021-03-01T00:00:00Z"}]}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newTestDriver(server.URL)
	stream := configuredStream("orders")
	records := collectRecords(t, s, stream)

	require.Equal(t, 2, len(records))
	// ascending-order invariant across consecutive pages
	assert.LessOrEqual(t, records[0]["updated_at"].(string), records[1]["updated_at"].(string))

	// first page carries sort, filter and stream extras
	assert.Equal(t, "updated_at asc", firstPageQuery["order"][0])
	assert.Equal(t, "2021-01-01", firstPageQuery["updated_at_min"][0])
	assert.Equal(t, "any", firstPageQuery["status"][0])

	// pages with a token send the token's parameters exclusively
	assert.Equal(t, "p2", secondPageQuery["page_info"][0])
	assert.NotContains(t, secondPageQuery, "updated_at_min")
	assert.NotContains(t, secondPageQuery, "status")
	assert.NotContains(t, secondPageQuery, "order")

	// state advanced to the high-water mark
	assert.Equal(t, "2021-03-01T00:00:00Z", s.state.GetCursor(stream, "updated_at"))
}

func TestReadEmptyStreamLeavesStateUnchanged(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/customers.json", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"customers":[]}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newTestDriver(server.URL)
	stream := configuredStream("customers")
	s.state.SetCursor(stream, "updated_at", "2021-04-01T00:00:00Z")

	records := collectRecords(t, s, stream)
	assert.Empty(t, records)
	assert.Equal(t, "2021-04-01T00:00:00Z", s.state.GetCursor(stream, "updated_at"))
}

func TestChildStreamIssuesOneFetchCyclePerParent(t *testing.T) {
	refundFetches := map[string]int{}
	mux := http.NewServeMux()
	mux.HandleFunc("/orders.json", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"orders":[{"id":1,"updated_at":"2021-02-01T00:00:00Z"},{"id":2,"updated_at":"2021-03-01T00:00:00Z"}]}`)
	})
	mux.HandleFunc("/orders/1/refunds.json", func(w http.ResponseWriter, r *http.Request) {
		refundFetches[r.URL.Path]++
		fmt.Fprint(w, `{"refunds":[{"id":10,"created_at":"2021-05-01T00:00:00Z"},{"id":11,"created_at":"2021-06-01T00:00:00Z"},{"id":12,"created_at":"2021-07-01T00:00:00Z"}]}`)
	})
	mux.HandleFunc("/orders/2/refunds.json", func(w http.ResponseWriter, r *http.Request) {
		refundFetches[r.URL.Path]++
		fmt.Fprint(w, `{"refunds":[]}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newTestDriver(server.URL)
	stream := configuredStream("order_refunds")
	// stored child state bounds records client-side, inclusive of equal
	s.state.SetCursor(stream, "created_at", "2021-06-01T00:00:00Z")

	records := collectRecords(t, s, stream)

	assert.Equal(t, 1, refundFetches["/orders/1/refunds.json"])
	assert.Equal(t, 1, refundFetches["/orders/2/refunds.json"])

	require.Equal(t, 2, len(records))
	assert.Equal(t, "2021-06-01T00:00:00Z", records[0]["created_at"])
	assert.Equal(t, "2021-07-01T00:00:00Z", records[1]["created_at"])

	// the child's own cursor advanced past the yielded records
	assert.Equal(t, "2021-07-01T00:00:00Z", s.state.GetCursor(stream, "created_at"))
}

func TestChildReplaysParentFromBridgedState(t *testing.T) {
	var parentQueries []string
	mux := http.NewServeMux()
	mux.HandleFunc("/orders.json", func(w http.ResponseWriter, r *http.Request) {
		parentQueries = append(parentQueries, r.URL.Query().Get("updated_at_min"))
		fmt.Fprint(w, `{"orders":[{"id":1,"updated_at":"2021-06-01T00:00:00Z"}]}`)
	})
	mux.HandleFunc("/orders/1/transactions.json", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"transactions":[{"id":20,"created_at":"2021-06-02T00:00:00Z"}]}`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newTestDriver(server.URL)
	orders := configuredStream("orders")
	s.state.SetCursor(orders, "updated_at", "2021-04-01T00:00:00Z")

	// parent run advances its high-water state but bridges the low-water mark
	collectRecords(t, s, orders)
	assert.Equal(t, "2021-06-01T00:00:00Z", s.state.GetCursor(orders, "updated_at"))

	transactions := configuredStream("transactions")
	records := collectRecords(t, s, transactions)
	require.Equal(t, 1, len(records))

	require.Equal(t, 2, len(parentQueries))
	assert.Equal(t, "2021-04-01T00:00:00Z", parentQueries[0], "parent run resumes from its persisted state")
	assert.Equal(t, "2021-04-01T00:00:00Z", parentQueries[1], "child replay uses the bridged low-water mark, not the new high-water state")
}

func TestDiscoverListsAllStreams(t *testing.T) {
	s := &Shopify{}
	streams := s.Discover()

	require.Equal(t, len(streamTable), len(streams))

	streamsMap := types.StreamsToMap(streams...)
	orders, found := streamsMap["orders"]
	require.True(t, found)
	assert.Equal(t, "updated_at", orders.DefaultCursorField)
	assert.Contains(t, orders.SupportedSyncModes, types.INCREMENTAL)
}
