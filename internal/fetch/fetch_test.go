package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixtureServer struct {
	*httptest.Server
	hits *atomic.Int64
}

func newFixtureServer(t *testing.T, handler http.HandlerFunc) fixtureServer {
	hits := &atomic.Int64{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return fixtureServer{Server: server, hits: hits}
}

func servePage(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(`<html><body><p id="marker">` + r.URL.Query().Get("page") + `</p></body></html>`))
}

func newTestSession(t *testing.T, baseURL string) *Session {
	session, err := NewSession(SessionOptions{
		BaseURL:     baseURL,
		MaxRequests: 100,
		Window:      time.Second,
	})
	require.NoError(t, err)
	return session
}

func TestPageCachesIdenticalParams(t *testing.T) {
	server := newFixtureServer(t, servePage)
	client := NewClient(newTestSession(t, server.URL), ClientOptions{MaxAge: time.Hour})

	params := Params{"page": "athleteDetail", "athleteId": "100"}
	first, err := client.Page(context.Background(), params)
	require.NoError(t, err)
	second, err := client.Page(context.Background(), params)
	require.NoError(t, err)

	require.Same(t, first, second)
	require.EqualValues(t, 1, server.hits.Load())
}

func TestPageRefetchesDifferentParams(t *testing.T) {
	server := newFixtureServer(t, servePage)
	client := NewClient(newTestSession(t, server.URL), ClientOptions{MaxAge: time.Hour})

	_, err := client.Page(context.Background(), Params{"athleteId": "100"})
	require.NoError(t, err)
	_, err = client.Page(context.Background(), Params{"athleteId": "200"})
	require.NoError(t, err)

	require.EqualValues(t, 2, server.hits.Load())
}

func TestPageZeroMaxAgeAlwaysRefetches(t *testing.T) {
	server := newFixtureServer(t, servePage)
	client := NewClient(newTestSession(t, server.URL), ClientOptions{MaxAge: 0})

	params := Params{"page": "meetSelect"}
	for i := 0; i < 3; i++ {
		_, err := client.Page(context.Background(), params)
		require.NoError(t, err)
	}
	require.EqualValues(t, 3, server.hits.Load())
}

func TestPageExpiredEntryRefetches(t *testing.T) {
	server := newFixtureServer(t, servePage)
	client := NewClient(newTestSession(t, server.URL), ClientOptions{MaxAge: time.Minute})

	current := time.Unix(1000, 0)
	client.now = func() time.Time { return current }

	params := Params{"page": "meetSelect"}
	_, err := client.Page(context.Background(), params)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = client.Page(context.Background(), params)
	require.NoError(t, err)
	require.EqualValues(t, 2, server.hits.Load())
}

func TestPageFailsClosedByDefault(t *testing.T) {
	fail := false
	server := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		servePage(w, r)
	})
	client := NewClient(newTestSession(t, server.URL), ClientOptions{MaxAge: 0})

	params := Params{"page": "athleteDetail"}
	_, err := client.Page(context.Background(), params)
	require.NoError(t, err)

	fail = true
	_, err = client.Page(context.Background(), params)
	require.ErrorIs(t, err, ErrNoDocument)

	// the previous entry is untouched and serves again once healthy
	fail = false
	doc, err := client.Page(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, doc)
}

func TestPageStaleOnError(t *testing.T) {
	fail := false
	server := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		servePage(w, r)
	})
	client := NewClient(newTestSession(t, server.URL), ClientOptions{MaxAge: 0, StaleOnError: true})

	params := Params{"page": "athleteDetail"}
	first, err := client.Page(context.Background(), params)
	require.NoError(t, err)

	fail = true
	stale, err := client.Page(context.Background(), params)
	require.NoError(t, err)
	require.Same(t, first, stale)
}

func TestPageEmptyBody(t *testing.T) {
	server := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("   \n"))
	})
	client := NewClient(newTestSession(t, server.URL), ClientOptions{MaxAge: time.Hour})

	_, err := client.Page(context.Background(), Params{"page": "athleteDetail"})
	require.ErrorIs(t, err, ErrNoDocument)
}

func TestParamsEqual(t *testing.T) {
	a := Params{"page": "athleteDetail", "athleteId": "100"}
	require.True(t, a.Equal(Params{"athleteId": "100", "page": "athleteDetail"}))
	require.False(t, a.Equal(Params{"page": "athleteDetail"}))
	require.False(t, a.Equal(Params{"page": "athleteDetail", "athleteId": "101"}))

	clone := a.Clone()
	clone["athleteId"] = "999"
	require.Equal(t, "100", a["athleteId"])
}
