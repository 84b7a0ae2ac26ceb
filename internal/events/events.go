// Package events announces stored sales to other systems.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// SaleCreated is published once per stored sale.
type SaleCreated struct {
	ID        string    `json:"id"`
	Fecha     string    `json:"fecha"`
	Modelo    string    `json:"modelo"`
	Precio    int64     `json:"precio"`
	Timestamp time.Time `json:"timestamp"`
}

func (m SaleCreated) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

type Publisher interface {
	PublishSaleCreated(ctx context.Context, m SaleCreated) error
	Close() error
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) PublishSaleCreated(context.Context, SaleCreated) error {
	return nil
}

func (Nop) Close() error {
	return nil
}
