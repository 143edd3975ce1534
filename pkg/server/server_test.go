package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/headless/pkg/layout"
	"github.com/vango-dev/headless/pkg/vdom"
)

func testTabs(t *testing.T) []layout.Tab[*vdom.VNode] {
	t.Helper()
	view := func(name string) layout.View[*vdom.VNode] {
		return layout.ViewFunc[*vdom.VNode](func(p layout.ViewProps) *vdom.VNode {
			return vdom.P(name + ":" + p.Params["id"])
		})
	}
	overview, err := layout.NewTab("overview", "/items/:id/overview", "Overview", view("overview"))
	require.NoError(t, err)
	history, err := layout.NewTab("history", "/items/:id/history", "History", view("history"))
	require.NoError(t, err)
	audit, err := layout.NewTab("audit", "/audit/:id/:actor", "Audit", view("audit"))
	require.NoError(t, err)
	return []layout.Tab[*vdom.VNode]{overview, history, audit}
}

func newTestServer(t *testing.T, mutate func(*Config), opts ...Option) (*Server, *httptest.Server) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Title = "Items"
	cfg.Tabs = testTabs(t)
	cfg.DefaultTab = "overview"
	if mutate != nil {
		mutate(&cfg)
	}
	srv, err := New(cfg, opts...)
	require.NoError(t, err)
	ts := httptest.NewServer(srv)
	t.Cleanup(func() {
		ts.Close()
		require.NoError(t, srv.Shutdown(context.Background()))
	})
	return srv, ts
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestPageRendersActiveTab(t *testing.T) {
	srv, ts := newTestServer(t, nil)
	client := newClient(t)

	resp, body := get(t, client, ts.URL+"/items/7/history")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<title>Items</title>")
	assert.Contains(t, body, `<section data-tab="history" role="tabpanel"><p>history:7</p></section>`)
	assert.Contains(t, body, `<form action="/_tabs/overview" method="post">`)
	assert.Contains(t, body, `<input name="from" type="hidden" value="/items/7/history">`)

	var sid string
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie {
			sid = c.Value
			assert.True(t, c.HttpOnly)
		}
	}
	require.NotEmpty(t, sid)
	assert.Equal(t, 1, srv.Sessions())

	get(t, client, ts.URL+"/items/7/overview")
	assert.Equal(t, 1, srv.Sessions(), "cookie reuses the session")
}

func TestPageNotFoundAndCanonical(t *testing.T) {
	_, ts := newTestServer(t, nil)
	client := newClient(t)

	resp, _ := get(t, client, ts.URL+"/nothing/here")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, client, ts.URL+"/items//7/history/?x=1")
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/items/7/history?x=1", resp.Header.Get("Location"))
}

func TestTabChangeKeepsSharedParams(t *testing.T) {
	_, ts := newTestServer(t, nil)
	client := newClient(t)
	get(t, client, ts.URL+"/items/7/overview")

	resp, err := client.PostForm(ts.URL+"/_tabs/history", url.Values{"from": {"/items/7/overview"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/items/7/history", resp.Header.Get("Location"))

	// A stale page still changes relative to the path it was rendered for.
	resp, err = client.PostForm(ts.URL+"/_tabs/overview", url.Values{"from": {"/items/9/history"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "/items/9/overview", resp.Header.Get("Location"))
}

func TestTabChangeErrors(t *testing.T) {
	_, ts := newTestServer(t, func(c *Config) { c.Strict = true })
	client := newClient(t)
	get(t, client, ts.URL+"/items/7/overview")

	resp, err := client.PostForm(ts.URL+"/_tabs/histroy", url.Values{"from": {"/items/7/overview"}})
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "H001")

	resp, err = client.PostForm(ts.URL+"/_tabs/audit", url.Values{"from": {"/items/7/overview"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, "actor is unknown in strict mode")

	resp, err = client.PostForm(ts.URL+"/_tabs/history", url.Values{"from": {"https://evil.example/x"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLiveNavigation(t *testing.T) {
	_, ts := newTestServer(t, nil)
	client := newClient(t)
	get(t, client, ts.URL+"/items/7/overview")

	base, err := url.Parse(ts.URL)
	require.NoError(t, err)
	header := http.Header{}
	for _, c := range client.Jar.Cookies(base) {
		header.Add("Cookie", c.String())
	}

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/_live"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	tests := []struct {
		req  LiveRequest
		want LiveResponse
	}{
		{LiveRequest{Tab: "history"}, LiveResponse{Path: "/items/7/history", Tab: "history"}},
		{LiveRequest{Tab: "overview", Params: map[string]string{"id": "8"}}, LiveResponse{Path: "/items/8/overview", Tab: "overview"}},
		{LiveRequest{Tab: "history", Path: "/items/3/overview"}, LiveResponse{Path: "/items/3/history", Tab: "history"}},
		{LiveRequest{Tab: "nope"}, LiveResponse{}},
		{LiveRequest{Tab: "history", Path: "/nowhere"}, LiveResponse{Error: "no tab owns /nowhere"}},
	}
	for _, tt := range tests {
		require.NoError(t, conn.WriteJSON(tt.req))
		var got LiveResponse
		require.NoError(t, conn.ReadJSON(&got))
		if tt.req.Tab == "nope" {
			assert.Contains(t, got.Error, "H001")
			continue
		}
		assert.Equal(t, tt.want, got)
	}
}

func TestLiveRequiresSession(t *testing.T) {
	_, ts := newTestServer(t, nil)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/_live"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, ts := newTestServer(t, nil, WithRegistry(reg))
	client := newClient(t)
	get(t, client, ts.URL+"/items/7/overview")
	resp, err := client.PostForm(ts.URL+"/_tabs/history", url.Values{"from": {"/items/7/overview"}})
	require.NoError(t, err)
	resp.Body.Close()

	_, body := get(t, client, ts.URL+"/metrics")
	assert.Contains(t, body, `headless_navigations_total{from="overview",to="history"} 1`)
	assert.Contains(t, body, "headless_sessions_active 1")
}

// syncBuffer is written by server goroutines and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRequestLogging(t *testing.T) {
	var buf syncBuffer
	_, ts := newTestServer(t, nil, WithLogger(zerolog.New(&buf)))
	get(t, newClient(t), ts.URL+"/items/7/overview")

	out := buf.String()
	assert.Contains(t, out, `"path":"/items/7/overview"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"request_id"`)
}

func TestNewRejectsInvalidLayout(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)

	cfg := DefaultConfig()
	cfg.Tabs = testTabs(t)
	cfg.DefaultTab = "missing"
	_, err = New(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrUnknownTab)
}

func TestIdleSessionsExpire(t *testing.T) {
	srv, ts := newTestServer(t, nil)
	get(t, newClient(t), ts.URL+"/items/7/overview")
	require.Equal(t, 1, srv.Sessions())

	srv.sessions.now = func() time.Time { return time.Now().Add(time.Hour) }
	assert.Equal(t, 1, srv.sessions.cleanupExpired())
	assert.Equal(t, 0, srv.Sessions())
}
