package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plutus-labs/schedule3/internal/report"
)

type statementResponse struct {
	Statement report.Statement      `json:"statement"`
	Title     string                `json:"title"`
	Lines     []report.ResolvedNode `json:"lines"`
}

func (s *Server) getStatement(w http.ResponseWriter, r *http.Request) {
	st, err := report.ParseStatement(chi.URLParam(r, "statement"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	pk, err := s.buildPack(r.Context(), r.URL.Query().Get("batch"))
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, statementResponse{
		Statement: st,
		Title:     st.Title(),
		Lines:     pk.Statement(st),
	})
}

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	pk, err := s.buildPack(r.Context(), r.URL.Query().Get("batch"))
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pk.Notes)
}

func (s *Server) getNote(w http.ResponseWriter, r *http.Request) {
	pk, err := s.buildPack(r.Context(), r.URL.Query().Get("batch"))
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	note := pk.Note(chi.URLParam(r, "number"))
	if note == nil {
		writeError(w, http.StatusNotFound, "unknown note")
		return
	}
	writeJSON(w, http.StatusOK, note)
}
