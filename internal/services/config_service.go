package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"phonedash/internal/domain"
	"phonedash/internal/metrics"
	"phonedash/internal/repos"
	"phonedash/internal/validate"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrUnknownConfig  = errors.New("unknown configuration document")
)

type ConfigService struct {
	Repo    *repos.ConfigRepo
	Metrics *metrics.Metrics
}

func NewConfigService(repo *repos.ConfigRepo, m *metrics.Metrics) *ConfigService {
	return &ConfigService{Repo: repo, Metrics: m}
}

func (s *ConfigService) Accessory(ctx context.Context) (domain.AccessoryConfig, error) {
	var c domain.AccessoryConfig
	err := s.load(ctx, domain.ConfigAccessory, &c)
	return c, err
}

func (s *ConfigService) IPhone(ctx context.Context) (domain.IPhoneConfig, error) {
	var c domain.IPhoneConfig
	err := s.load(ctx, domain.ConfigIPhone, &c)
	return c, err
}

func (s *ConfigService) load(ctx context.Context, id string, dst any) error {
	start := time.Now()
	doc, err := s.Repo.Get(ctx, id)
	s.Metrics.ObserveStore("config.get", start)
	if errors.Is(err, sql.ErrNoRows) {
		s.Metrics.ObserveConfigLookup(id, "not_found")
		return ErrConfigNotFound
	}
	if err != nil {
		s.Metrics.ObserveConfigLookup(id, "error")
		return fmt.Errorf("get config %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(doc.Body), dst); err != nil {
		s.Metrics.ObserveConfigLookup(id, "error")
		return fmt.Errorf("decode config %s: %w", id, err)
	}
	s.Metrics.ObserveConfigLookup(id, "found")
	return nil
}

// Put replaces a catalog document after checking it decodes into its typed shape
// with no unknown keys. It returns the new document version.
func (s *ConfigService) Put(ctx context.Context, id string, raw []byte) (int, error) {
	clean, ok := validate.ID(id)
	if !ok {
		return 0, fmt.Errorf("%w: malformed id %q", ErrUnknownConfig, id)
	}
	id = clean

	var dst any
	switch id {
	case domain.ConfigAccessory:
		dst = &domain.AccessoryConfig{}
	case domain.ConfigIPhone:
		dst = &domain.IPhoneConfig{}
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownConfig, id)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return 0, fmt.Errorf("invalid %s document: %w", id, err)
	}
	body, err := json.Marshal(dst)
	if err != nil {
		return 0, fmt.Errorf("encode %s document: %w", id, err)
	}
	start := time.Now()
	v, err := s.Repo.Upsert(ctx, id, string(body))
	s.Metrics.ObserveStore("config.upsert", start)
	if err != nil {
		return 0, fmt.Errorf("store config %s: %w", id, err)
	}
	return v, nil
}
