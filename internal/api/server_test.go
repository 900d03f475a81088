package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JonMunkholm/PhoneAdvisor/internal/advisor"
	"github.com/JonMunkholm/PhoneAdvisor/internal/llm"
	"github.com/JonMunkholm/PhoneAdvisor/internal/store"
)

type fakeCatalog struct {
	rows []store.Row
	err  error
}

func (f *fakeCatalog) QueryArgs(_ context.Context, _ string, _ ...any) ([]store.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fixedProvider struct {
	sql    string
	answer string
}

func (p *fixedProvider) Generate(_ context.Context, req llm.Request) (string, error) {
	if strings.Contains(req.System, "SQL") {
		return p.sql, nil
	}
	return p.answer, nil
}

func (p *fixedProvider) Name() string { return "fixed" }

type fixedExecutor struct {
	rows []store.Row
}

func (f *fixedExecutor) Query(_ context.Context, _ string) ([]store.Row, error) {
	return f.rows, nil
}

func newTestServer(catalog Catalog, adv *advisor.Advisor) *Server {
	return NewServer(catalog, adv, zap.NewNop())
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&fakeCatalog{}, nil)
	rec := doJSON(t, srv, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "not initialized", resp.Agent)
}

func TestAskWithoutAdvisor(t *testing.T) {
	srv := newTestServer(&fakeCatalog{}, nil)
	rec := doJSON(t, srv, http.MethodPost, "/ask", `{"question":"hi"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAskValidation(t *testing.T) {
	adv := advisor.New(&fixedProvider{}, &fixedExecutor{}, nil, nil, zap.NewNop())
	srv := newTestServer(&fakeCatalog{}, adv)

	rec := doJSON(t, srv, http.MethodPost, "/ask", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/ask", `{"question":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskRoundTrip(t *testing.T) {
	adv := advisor.New(
		&fixedProvider{
			sql:    "SELECT name FROM samsung_phones WHERE network_5g_bands != '' LIMIT 5",
			answer: "Three models support 5G: A, B, C.",
		},
		&fixedExecutor{rows: []store.Row{{"name": "A"}, {"name": "B"}, {"name": "C"}}},
		nil, nil, zap.NewNop(),
	)
	srv := newTestServer(&fakeCatalog{}, adv)

	rec := doJSON(t, srv, http.MethodPost, "/ask", `{"question":"Which phones have 5G?","conversation_id":"t1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp askResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Three models support 5G: A, B, C.", resp.Answer)
	assert.Equal(t, "t1", resp.ConversationID)
	assert.Len(t, resp.Rows, 3)
	assert.NotEmpty(t, resp.Timestamp)

	// History is exposed on the thread endpoint.
	rec = doJSON(t, srv, http.MethodGet, "/threads/t1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var thread threadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &thread))
	require.Len(t, thread.Messages, 2)
	assert.Equal(t, "user", thread.Messages[0].Role)
	assert.Equal(t, "assistant", thread.Messages[1].Role)
}

func TestSearch(t *testing.T) {
	srv := newTestServer(&fakeCatalog{rows: []store.Row{{"name": "Galaxy S25"}}}, nil)

	rec := doJSON(t, srv, http.MethodPost, "/search", `{"query":"S25"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Results []store.Row `json:"results"`
		Count   int         `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)

	rec = doJSON(t, srv, http.MethodPost, "/search", `{"query":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPhoneNotFound(t *testing.T) {
	srv := newTestServer(&fakeCatalog{rows: []store.Row{}}, nil)
	rec := doJSON(t, srv, http.MethodGet, "/phones/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/phones/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogFailure(t *testing.T) {
	srv := newTestServer(&fakeCatalog{err: errors.New("connection lost")}, nil)

	rec := doJSON(t, srv, http.MethodGet, "/phones/popular", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/stats", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
