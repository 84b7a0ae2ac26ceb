package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"phonedash/internal/domain"
	"phonedash/internal/events"
	applog "phonedash/internal/log"
	"phonedash/internal/metrics"
	"phonedash/internal/repos"
	"phonedash/internal/validate"
)

// ValidationError rejects a sale before it reaches storage.
type ValidationError struct {
	Fields validate.Errors
}

func (e *ValidationError) Error() string { return e.Fields.Error() }
func (e *ValidationError) Unwrap() error { return e.Fields }

type SaleService struct {
	Repo    *repos.SaleRepo
	Events  events.Publisher
	Metrics *metrics.Metrics
	Loc     *time.Location
	Now     func() time.Time
}

func NewSaleService(repo *repos.SaleRepo, pub events.Publisher, m *metrics.Metrics, loc *time.Location) *SaleService {
	if pub == nil {
		pub = events.Nop{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &SaleService{Repo: repo, Events: pub, Metrics: m, Loc: loc, Now: time.Now}
}

// Create validates the input, stamps id and createdAt, defaults fecha to the
// current day and stores the sale.
func (s *SaleService) Create(ctx context.Context, in domain.SaleInput) (domain.Sale, error) {
	in.Modelo = strings.TrimSpace(in.Modelo)
	in.Fecha = strings.TrimSpace(in.Fecha)
	if err := validate.Struct(in); err != nil {
		var verrs validate.Errors
		if errors.As(err, &verrs) {
			return domain.Sale{}, &ValidationError{Fields: verrs}
		}
		return domain.Sale{}, err
	}
	if in.ClienteRUT != "" {
		in.ClienteRUT, _ = validate.RUT(in.ClienteRUT)
	}

	now := s.Now()
	if in.Fecha == "" {
		in.Fecha = now.In(s.Loc).Format("2006-01-02")
	}
	sale := domain.Sale{ID: uuid.NewString(), SaleInput: in, CreatedAt: now.UTC()}

	start := time.Now()
	err := s.Repo.Insert(ctx, sale)
	s.Metrics.ObserveStore("sales.insert", start)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("insert sale: %w", err)
	}
	s.Metrics.IncrementSalesCreated()

	msg := events.SaleCreated{
		ID:        sale.ID,
		Fecha:     sale.Fecha,
		Modelo:    sale.Modelo,
		Precio:    int64(sale.Precio),
		Timestamp: sale.CreatedAt,
	}
	if err := s.Events.PublishSaleCreated(ctx, msg); err != nil {
		applog.Error(nil, "events.sale_created.fail", err, map[string]any{"id": sale.ID})
	}
	return sale, nil
}

// List returns every sale, most recent business date first.
func (s *SaleService) List(ctx context.Context) ([]domain.Sale, error) {
	start := time.Now()
	out, err := s.Repo.List(ctx)
	s.Metrics.ObserveStore("sales.list", start)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return out, nil
}

type Summary struct {
	Count  int
	Precio int64
	Costo  int64
	Margen int64
}

func (s *SaleService) Summary(ctx context.Context) (Summary, error) {
	t, err := s.Repo.Totals(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("sale totals: %w", err)
	}
	return Summary{Count: t.Count, Precio: t.Precio, Costo: t.Costo, Margen: t.Precio - t.Costo}, nil
}
