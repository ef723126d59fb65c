package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tariff is a fee schedule. Exactly one of the two costs applies per
// operation: CostoPorPorcentaje above the commission threshold, CostoFijo at
// or below it. Both are non-negative.
type Tariff struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CodTarifa   string `gorm:"size:100;uniqueIndex;not null" json:"cod_tarifa"`
	Descripcion string `gorm:"size:200;not null" json:"descripcion"`

	CostoPorPorcentaje decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"costo_por_porcentaje"`
	CostoFijo          decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"costo_fijo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
