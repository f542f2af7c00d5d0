package server

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/plutus-labs/schedule3/internal/ingest"
	"github.com/plutus-labs/schedule3/internal/notes"
	"github.com/plutus-labs/schedule3/internal/report"
	"github.com/plutus-labs/schedule3/internal/store"
)

type Server struct {
	store   *store.Store
	router  chi.Router
	addr    string
	company string
}

func New(st *store.Store, addr, company string) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	s := &Server{store: st, router: r, addr: addr, company: company}

	r.Route("/api/v1", func(r chi.Router) {
		// Trial balance imports
		r.Post("/trialbalance", s.importTrialBalance)
		r.Get("/batches", s.listBatches)
		r.Get("/batches/{id}/rows", s.batchRows)

		// Statements and notes
		r.Get("/statements/{statement}", s.getStatement)
		r.Get("/notes", s.listNotes)
		r.Get("/notes/{number}", s.getNote)

		// Exports
		r.Get("/export/xlsx", s.exportExcel)
		r.Get("/export/pdf", s.exportPDF)

		// Manual adjustments
		r.Post("/adjustments", s.createAdjustment)
		r.Get("/adjustments", s.listAdjustments)
		r.Delete("/adjustments/{id}", s.deleteAdjustment)
	})

	return s
}

func (s *Server) ListenAndServe() error {
	log.Printf("schedule3 server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.router)
}

func (s *Server) Serve(ln net.Listener) error {
	log.Printf("schedule3 server listening on %s", ln.Addr())
	return http.Serve(ln, s.router)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// loadRows fetches the rows of the requested batch (or the latest one)
// with any manual adjustments applied.
func (s *Server) loadRows(ctx context.Context, batchID string) (report.Rows, error) {
	var rows report.Rows
	var err error
	if batchID == "" {
		rows, err = s.store.LatestRows(ctx)
	} else {
		rows, err = s.store.BatchRows(ctx, batchID)
	}
	if err != nil {
		return nil, err
	}

	adjustments, err := s.store.ListAdjustments(ctx)
	if err != nil {
		return nil, err
	}
	return ingest.Apply(rows, adjustments), nil
}

func (s *Server) buildPack(ctx context.Context, batchID string) (*report.Pack, error) {
	rows, err := s.loadRows(ctx, batchID)
	if err != nil {
		return nil, err
	}
	return report.BuildPack(rows, notes.Registry()), nil
}
