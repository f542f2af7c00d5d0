package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plutus-labs/schedule3/internal/report"
)

// Batch describes one imported trial-balance file.
type Batch struct {
	ID         string    `json:"id"`
	SourceFile string    `json:"source_file"`
	RowCount   int       `json:"row_count"`
	ImportedAt time.Time `json:"imported_at"`
}

// CreateBatch stores an imported trial balance as a new batch and returns
// its metadata.
func (s *Store) CreateBatch(ctx context.Context, sourceFile string, rows report.Rows) (*Batch, error) {
	batch := &Batch{
		ID:         uuid.Must(uuid.NewV7()).String(),
		SourceFile: sourceFile,
		RowCount:   len(rows),
		ImportedAt: time.Now().UTC(),
	}

	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO import_batches (id, source_file, row_count, imported_at) VALUES (?, ?, ?, ?)`,
		batch.ID, batch.SourceFile, batch.RowCount, batch.ImportedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert batch: %w", err)
	}

	for i, row := range rows {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO ledger_rows (batch_id, level1, level2, amount_current, amount_previous) VALUES (?, ?, ?, ?, ?)`,
			batch.ID, row.Level1, row.Level2, row.Current, row.Previous,
		)
		if err != nil {
			return nil, fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return batch, nil
}

func (s *Store) ListBatches(ctx context.Context) ([]Batch, error) {
	rows, err := s.reader.QueryContext(ctx,
		`SELECT id, source_file, row_count, imported_at FROM import_batches ORDER BY imported_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, *b)
	}
	return batches, rows.Err()
}

// LatestBatch returns the most recently imported batch.
func (s *Store) LatestBatch(ctx context.Context) (*Batch, error) {
	row := s.reader.QueryRowContext(ctx,
		`SELECT id, source_file, row_count, imported_at FROM import_batches ORDER BY imported_at DESC, id DESC LIMIT 1`)
	b, err := scanBatch(row)
	if err == sql.ErrNoRows {
		return nil, ErrNoBatches
	}
	return b, err
}

// BatchRows returns the ledger rows of a batch.
func (s *Store) BatchRows(ctx context.Context, batchID string) (report.Rows, error) {
	var exists int
	if err := s.reader.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM import_batches WHERE id = ?`, batchID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check batch: %w", err)
	}
	if exists == 0 {
		return nil, ErrBatchNotFound
	}

	rows, err := s.reader.QueryContext(ctx,
		`SELECT level1, level2, amount_current, amount_previous FROM ledger_rows WHERE batch_id = ? ORDER BY id`, batchID)
	if err != nil {
		return nil, fmt.Errorf("batch rows: %w", err)
	}
	defer rows.Close()

	var out report.Rows
	for rows.Next() {
		var r report.LedgerRow
		if err := rows.Scan(&r.Level1, &r.Level2, &r.Current, &r.Previous); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// LatestRows returns the rows of the most recent batch.
func (s *Store) LatestRows(ctx context.Context) (report.Rows, error) {
	batch, err := s.LatestBatch(ctx)
	if err != nil {
		return nil, err
	}
	return s.BatchRows(ctx, batch.ID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBatch(row rowScanner) (*Batch, error) {
	var b Batch
	var importedAt string
	if err := row.Scan(&b.ID, &b.SourceFile, &b.RowCount, &importedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan batch: %w", err)
	}
	b.ImportedAt, _ = time.Parse(time.RFC3339Nano, importedAt)
	return &b, nil
}
