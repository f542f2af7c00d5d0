package server

import (
	"net/http"

	"github.com/plutus-labs/schedule3/internal/export"
)

func (s *Server) exportExcel(w http.ResponseWriter, r *http.Request) {
	pk, err := s.buildPack(r.Context(), r.URL.Query().Get("batch"))
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	data, err := export.Excel(pk, s.company)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="financial-statements.xlsx"`)
	w.Write(data)
}

func (s *Server) exportPDF(w http.ResponseWriter, r *http.Request) {
	pk, err := s.buildPack(r.Context(), r.URL.Query().Get("batch"))
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	data, err := export.PDF(pk, s.company)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="financial-statements.pdf"`)
	w.Write(data)
}
