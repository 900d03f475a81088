// Package api exposes the advisor and catalog over HTTP. It is a thin
// transport layer; all question-answering behavior lives in the advisor.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/JonMunkholm/PhoneAdvisor/internal/advisor"
	"github.com/JonMunkholm/PhoneAdvisor/internal/store"
)

const askTimeout = 120 * time.Second

// Catalog is the slice of the store the API needs directly.
type Catalog interface {
	QueryArgs(ctx context.Context, query string, args ...any) ([]store.Row, error)
}

// Server handles HTTP requests. advisor may be nil when no LLM is
// configured; /ask then answers 503.
type Server struct {
	catalog Catalog
	advisor *advisor.Advisor
	log     *zap.Logger
}

// NewServer creates a Server.
func NewServer(catalog Catalog, adv *advisor.Advisor, log *zap.Logger) *Server {
	return &Server{catalog: catalog, advisor: adv, log: log}
}

// Router builds the chi router for all endpoints.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Post("/ask", s.handleAsk)
	r.Get("/threads/{id}", s.handleThread)
	r.Post("/search", s.handleSearch)
	r.Get("/phones/popular", s.handlePopular)
	r.Get("/phones/{id}", s.handlePhone)
	r.Get("/stats", s.handleStats)
	return r
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Agent    string `json:"agent"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "healthy", Database: "connected", Agent: "ready"}
	if s.catalog == nil {
		resp.Database = "disconnected"
	}
	if s.advisor == nil {
		resp.Agent = "not initialized"
	}
	respondJSON(w, http.StatusOK, resp)
}

type askRequest struct {
	Question       string `json:"question"`
	ConversationID string `json:"conversation_id"`
}

type askResponse struct {
	advisor.Result
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if s.advisor == nil {
		respondError(w, http.StatusServiceUnavailable, "advisor not initialized. Set LLM_API_KEY.")
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "question is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), askTimeout)
	defer cancel()

	result := s.advisor.Ask(ctx, req.Question, req.ConversationID)
	respondJSON(w, http.StatusOK, askResponse{
		Result:    result,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

type threadResponse struct {
	ThreadID string            `json:"thread_id"`
	Messages []advisor.Message `json:"messages"`
}

func (s *Server) handleThread(w http.ResponseWriter, r *http.Request) {
	if s.advisor == nil {
		respondError(w, http.StatusServiceUnavailable, "advisor not initialized. Set LLM_API_KEY.")
		return
	}
	id := chi.URLParam(r, "id")
	respondJSON(w, http.StatusOK, threadResponse{
		ThreadID: id,
		Messages: s.advisor.History(id),
	})
}

type searchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Query == "" {
		respondError(w, http.StatusBadRequest, "query is required")
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	rows, err := s.catalog.QueryArgs(r.Context(), `
		SELECT name, image_url, platform_os, main_camera, battery_type, misc_price
		FROM samsung_phones
		WHERE name ILIKE '%' || $1 || '%'
		LIMIT $2`, req.Query, limit)
	if err != nil {
		s.log.Error("search failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "search failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": rows, "count": len(rows)})
}

func (s *Server) handlePopular(w http.ResponseWriter, r *http.Request) {
	rows, err := s.catalog.QueryArgs(r.Context(), `
		SELECT name, image_url, launch_announced, platform_os, main_camera
		FROM samsung_phones
		WHERE launch_announced != ''
		ORDER BY id DESC
		LIMIT 10`)
	if err != nil {
		s.log.Error("popular lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"results": rows})
}

func (s *Server) handlePhone(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid phone id")
		return
	}

	rows, err := s.catalog.QueryArgs(r.Context(),
		"SELECT * FROM samsung_phones WHERE id = $1", id)
	if err != nil {
		s.log.Error("phone lookup failed", zap.Int("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if len(rows) == 0 {
		respondError(w, http.StatusNotFound, "phone not found")
		return
	}
	respondJSON(w, http.StatusOK, rows[0])
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	rows, err := s.catalog.QueryArgs(r.Context(), `
		SELECT
			COUNT(*) AS total_phones,
			COUNT(DISTINCT platform_chipset) AS unique_chipsets,
			COUNT(*) FILTER (WHERE network_5g_bands != '') AS phones_with_5g
		FROM samsung_phones`)
	if err != nil {
		s.log.Error("stats failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "stats failed")
		return
	}
	if len(rows) == 0 {
		respondJSON(w, http.StatusOK, store.Row{})
		return
	}
	respondJSON(w, http.StatusOK, rows[0])
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
