package handlers

import (
	"github.com/jmoiron/sqlx"

	"phonedash/internal/config"
	"phonedash/internal/events"
	"phonedash/internal/metrics"
	"phonedash/internal/repos"
	"phonedash/internal/services"
)

type Deps struct {
	ConfigHandler    *ConfigHandler
	SaleHandler      *SaleHandler
	DashboardHandler *DashboardHandler
	HealthHandler    *HealthHandler
	Metrics          *metrics.Metrics
}

// NewDeps wires repos, services and handlers over one database handle. pub and m
// may be nil.
func NewDeps(db *sqlx.DB, cfg config.Config, m *metrics.Metrics, pub events.Publisher) *Deps {
	configRepo := repos.NewConfigRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	configSvc := services.NewConfigService(configRepo, m)
	saleSvc := services.NewSaleService(saleRepo, pub, m, cfg.Location())

	return &Deps{
		ConfigHandler:    &ConfigHandler{Configs: configSvc},
		SaleHandler:      &SaleHandler{Sales: saleSvc},
		DashboardHandler: &DashboardHandler{Sales: saleSvc},
		HealthHandler:    &HealthHandler{DB: db},
		Metrics:          m,
	}
}
