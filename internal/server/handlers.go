package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/namesmith/namesmith/internal/pipeline"
	"github.com/namesmith/namesmith/internal/types"
)

// LoginRequest is the access-password login payload.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// errorResponse is the uniform error payload.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeError maps an error to its HTTP status and writes it.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, HTTPStatus(err), errorResponse{Error: err.Error()})
}

// handleLogin verifies the access password and issues a JWT.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if !s.accessCfg.VerifyAccess(req.Password) {
		writeError(w, &ErrInvalidCredentials{})
		return
	}

	token, err := s.jwtService.GenerateToken()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// generateResponse wraps pipeline output with a request id for log
// correlation.
type generateResponse struct {
	RequestID      uuid.UUID           `json:"request_id"`
	Results        []types.ScoreResult `json:"results"`
	TotalGenerated int                 `json:"total_generated"`
}

// handleGenerate runs the single-persona pipeline.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	resp, err := s.pipeline.Run(r.Context(), req, pipeline.RunOptions{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		RequestID:      uuid.New(),
		Results:        resp.Results,
		TotalGenerated: resp.TotalGenerated,
	})
}

type multiGenerateResponse struct {
	RequestID      uuid.UUID                `json:"request_id"`
	Results        []types.MultiScoreResult `json:"results"`
	TotalGenerated int                      `json:"total_generated"`
}

// handleGenerateMulti runs the multi-persona pipeline.
func (s *Server) handleGenerateMulti(w http.ResponseWriter, r *http.Request) {
	var req types.MultiGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	resp, err := s.pipeline.RunMulti(r.Context(), req, pipeline.RunOptions{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, multiGenerateResponse{
		RequestID:      uuid.New(),
		Results:        resp.Results,
		TotalGenerated: resp.TotalGenerated,
	})
}

// handleListPersonas returns the registered persona presets.
func (s *Server) handleListPersonas(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.List())
}
