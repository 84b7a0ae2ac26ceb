package repos

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"phonedash/internal/domain"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// SaleTotals aggregates over every stored sale.
type SaleTotals struct {
	Count  int   `db:"count"`
	Precio int64 `db:"precio"`
	Costo  int64 `db:"costo"`
}

// Insert stores the sale as a JSON document.
func (r *SaleRepo) Insert(ctx context.Context, s domain.Sale) error {
	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode sale: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sales(id, fecha, body, created_at)
		VALUES (?, ?, ?, ?)
	`, s.ID, s.Fecha, string(body), s.CreatedAt.UTC().Format(timeLayout))
	return err
}

// List returns every sale, most recent business date first. Sales stamped at
// the same instant fall back to id order so pages stay stable.
func (r *SaleRepo) List(ctx context.Context) ([]domain.Sale, error) {
	var bodies []string
	if err := r.db.SelectContext(ctx, &bodies, `
		SELECT body FROM sales
		ORDER BY fecha DESC, created_at DESC, id DESC
	`); err != nil {
		return nil, err
	}
	out := make([]domain.Sale, 0, len(bodies))
	for _, b := range bodies {
		var s domain.Sale
		if err := json.Unmarshal([]byte(b), &s); err != nil {
			return nil, fmt.Errorf("decode sale: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *SaleRepo) Totals(ctx context.Context) (SaleTotals, error) {
	var t SaleTotals
	err := r.db.GetContext(ctx, &t, `
		SELECT COUNT(*) AS count,
		       COALESCE(SUM(json_extract(body, '$.precio')), 0) AS precio,
		       COALESCE(SUM(json_extract(body, '$.costo')), 0) AS costo
		FROM sales
	`)
	return t, err
}
