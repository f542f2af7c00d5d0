package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plutus-labs/schedule3/internal/ingest"
)

// CreateAdjustment records a manual trial-balance adjustment.
func (s *Store) CreateAdjustment(ctx context.Context, adj ingest.Adjustment) (*ingest.Adjustment, error) {
	adj.ID = uuid.Must(uuid.NewV7()).String()
	adj.CreatedAt = time.Now().UTC()

	_, err := s.writer.ExecContext(ctx,
		`INSERT INTO adjustments (id, level1, level2, amount_current, amount_previous, narration, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		adj.ID, adj.Level1, adj.Level2, adj.Current, adj.Previous, adj.Narration,
		adj.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert adjustment: %w", err)
	}
	return &adj, nil
}

func (s *Store) ListAdjustments(ctx context.Context) ([]ingest.Adjustment, error) {
	rows, err := s.reader.QueryContext(ctx,
		`SELECT id, level1, level2, amount_current, amount_previous, narration, created_at
		 FROM adjustments ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []ingest.Adjustment
	for rows.Next() {
		var adj ingest.Adjustment
		var createdAt string
		if err := rows.Scan(&adj.ID, &adj.Level1, &adj.Level2, &adj.Current, &adj.Previous, &adj.Narration, &createdAt); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		adj.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		adjustments = append(adjustments, adj)
	}
	return adjustments, rows.Err()
}

func (s *Store) DeleteAdjustment(ctx context.Context, id string) error {
	res, err := s.writer.ExecContext(ctx, `DELETE FROM adjustments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete adjustment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrAdjustmentNotFound
	}
	return nil
}
