package domain

import (
	"time"

	"phonedash/internal/money"
)

const (
	SaleTypeIPhone    = "iphone"
	SaleTypeAccessory = "accesorio"
)

// SaleInput is the client-submitted part of a sale. Everything except Modelo is optional.
type SaleInput struct {
	Fecha         string       `json:"fecha,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Tipo          string       `json:"tipo,omitempty" validate:"omitempty,oneof=iphone accesorio"`
	Modelo        string       `json:"modelo" validate:"required,max=80"`
	Serie         string       `json:"serie,omitempty" validate:"max=80"`
	Gama          string       `json:"gama,omitempty" validate:"max=80"`
	Configuracion string       `json:"configuracion,omitempty" validate:"max=120"`
	IMEI          string       `json:"imei,omitempty" validate:"omitempty,numeric,len=15"`
	Precio        money.Amount `json:"precio" validate:"gte=0"`
	Costo         money.Amount `json:"costo,omitempty" validate:"gte=0"`
	MedioPago     string       `json:"medio_pago,omitempty" validate:"omitempty,oneof=efectivo transferencia debito credito"`
	ClienteRUT    string       `json:"cliente_rut,omitempty" validate:"omitempty,rut"`
	ClienteNombre string       `json:"cliente_nombre,omitempty" validate:"max=120"`
	Notas         string       `json:"notas,omitempty" validate:"max=500"`
}

// Sale is a persisted sale record.
type Sale struct {
	ID string `json:"id"`
	SaleInput
	CreatedAt time.Time `json:"createdAt"`
}

// Margin is the sale price minus its cost, in whole pesos.
func (s Sale) Margin() int64 {
	return int64(s.Precio) - int64(s.Costo)
}
