package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/plutus-labs/schedule3/internal/ingest"
)

type createAdjustmentRequest struct {
	Level1    string  `json:"level1"`
	Level2    string  `json:"level2"`
	Current   float64 `json:"amount_current"`
	Previous  float64 `json:"amount_previous"`
	Narration string  `json:"narration"`
}

func (s *Server) createAdjustment(w http.ResponseWriter, r *http.Request) {
	var req createAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Level1) == "" {
		writeError(w, http.StatusBadRequest, "level1 is required")
		return
	}

	adj, err := s.store.CreateAdjustment(r.Context(), ingest.Adjustment{
		Level1:    strings.TrimSpace(req.Level1),
		Level2:    strings.TrimSpace(req.Level2),
		Current:   req.Current,
		Previous:  req.Previous,
		Narration: req.Narration,
	})
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, adj)
}

func (s *Server) listAdjustments(w http.ResponseWriter, r *http.Request) {
	adjustments, err := s.store.ListAdjustments(r.Context())
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	if adjustments == nil {
		adjustments = []ingest.Adjustment{}
	}
	writeJSON(w, http.StatusOK, adjustments)
}

func (s *Server) deleteAdjustment(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteAdjustment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
