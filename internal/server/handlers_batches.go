package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plutus-labs/schedule3/internal/ingest"
	"github.com/plutus-labs/schedule3/internal/store"
)

// 16 MiB is generous for a trial-balance export.
const maxUploadBytes = 16 << 20

func (s *Server) importTrialBalance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	rows, err := ingest.Parse(file, header.Filename)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	batch, err := s.store.CreateBatch(r.Context(), header.Filename, rows)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, batch)
}

func (s *Server) listBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := s.store.ListBatches(r.Context())
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	if batches == nil {
		batches = []store.Batch{}
	}
	writeJSON(w, http.StatusOK, batches)
}

func (s *Server) batchRows(w http.ResponseWriter, r *http.Request) {
	rows, err := s.store.BatchRows(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
