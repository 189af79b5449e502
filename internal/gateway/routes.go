package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/soyeahso/cineco/internal/chat"
	"github.com/soyeahso/cineco/internal/llm"
	"github.com/soyeahso/cineco/internal/media"
	"github.com/soyeahso/cineco/internal/version"
)

// searchRows is how many archive results the direct search endpoint asks for.
const searchRows = 15

// registerRoutes sets up all HTTP routes on the server mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/item", s.handleItem)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Everything else is the static frontend.
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.Server.StaticDir)))
}

// ChatRequest is the body of POST /api/chat. History carries the full
// conversation so far, including the message being sent.
type ChatRequest struct {
	Message string        `json:"message"`
	History []llm.Message `json:"history"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "missing message")
		return
	}
	if s.chatter == nil {
		writeError(w, http.StatusServiceUnavailable, "chat is not configured")
		return
	}

	// Clients that send only the message still get a coherent turn.
	history := req.History
	if len(history) == 0 {
		history = []llm.Message{{Role: llm.RoleUser, Content: req.Message}}
	}

	result, err := s.chatter.Respond(r.Context(), req.Message, history)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, "missing message")
			return
		}
		s.log.Error().Err(err).Msg("chat turn failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter")
		return
	}

	items, err := s.archive.Search(r.Context(), query, searchRows)
	if err != nil {
		// Upstream failures stay in-band so the frontend can show them.
		s.log.Warn().Err(err).Str("query", query).Msg("archive search failed")
		writeJSON(w, http.StatusOK, media.ErrorResult{Error: err.Error()})
		return
	}
	if items == nil {
		items = []media.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	identifier := r.URL.Query().Get("id")
	if identifier == "" {
		writeError(w, http.StatusBadRequest, "missing identifier parameter")
		return
	}

	details, err := s.archive.Metadata(r.Context(), identifier)
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", identifier).Msg("metadata fetch failed")
		writeJSON(w, http.StatusOK, media.ErrorResult{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: version.Version})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, media.ErrorResult{Error: message})
}
