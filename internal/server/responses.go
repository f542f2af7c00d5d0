package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/plutus-labs/schedule3/internal/ingest"
	"github.com/plutus-labs/schedule3/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, store.ErrBatchNotFound),
		errors.Is(err, store.ErrAdjustmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrNoBatches):
		return http.StatusConflict
	case errors.Is(err, ingest.ErrNoHeader),
		errors.Is(err, ingest.ErrMissingColumns):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
