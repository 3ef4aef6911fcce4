package in_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	cachein "examprep/internal/modules/cache/adapter/in"
	"examprep/internal/modules/cache/dto"
)

// echoLoop answers every event with its kind and target so tests can see
// what the handler sent.
func echoLoop(ctx context.Context, events <-chan dto.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			h := http.Header{}
			h.Set("X-Event", string(ev.Kind))
			body := ev.Request.Method + " " + ev.Request.URL + "|" + ev.Tag + "|" + string(ev.Payload)
			ev.Reply <- dto.Result{Response: dto.Response{Status: http.StatusOK, Header: h, Body: []byte(body)}}
		}
	}
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan dto.Event)
	go echoLoop(ctx, events)
	handler, err := cachein.NewHTTPHandler(events, "http://app.test", nil)
	require.NoError(t, err)
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return srv
}

func read(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestFetchIsResolvedAgainstOrigin(t *testing.T) {
	t.Parallel()
	srv := newServer(t)
	resp, err := srv.Client().Get(srv.URL + "/quiz?set=3")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "fetch", resp.Header.Get("X-Event"))
	require.Equal(t, "GET http://app.test/quiz?set=3||", read(t, resp))
}

func TestControlEndpointsBecomeEvents(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	resp, err := srv.Client().Post(srv.URL+"/_controller/sync?tag=questions", "text/plain", nil)
	require.NoError(t, err)
	require.Equal(t, "sync", resp.Header.Get("X-Event"))
	require.Equal(t, " |questions|", read(t, resp))

	resp, err = srv.Client().Post(srv.URL+"/_controller/push", "application/json", strings.NewReader(`{"body":"hi"}`))
	require.NoError(t, err)
	require.Equal(t, "push", resp.Header.Get("X-Event"))
	require.Equal(t, ` ||{"body":"hi"}`, read(t, resp))
}

func TestControlEndpointRules(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	resp, err := srv.Client().Get(srv.URL + "/_controller/sync")
	require.NoError(t, err)
	_ = read(t, resp)
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = srv.Client().Post(srv.URL+"/_controller/reboot", "text/plain", nil)
	require.NoError(t, err)
	_ = read(t, resp)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
