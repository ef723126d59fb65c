package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one committed ledger entry from a bank statement import.
//
// CodBCP is the natural key: globally unique, assigned by the source data or
// auto-generated at confirm time. Saldo, Comision, LmPagar and
// GananciaReferido are derived by the fee engine and never supplied by
// upstream input. Entries are created once and never updated or deleted.
type Transaction struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	CodBCP string `gorm:"size:100;uniqueIndex;not null" json:"cod_bcp"`

	Fecha       *time.Time      `json:"fecha"`
	FechaValuta *time.Time      `json:"fecha_valuta"`
	Descripcion string          `gorm:"size:200" json:"descripcion"`
	Monto       decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"monto"`

	SucursalAgencia string `gorm:"size:100" json:"sucursal_agencia"`
	NOperacion      string `gorm:"size:50" json:"n_operacion"`
	Usuario         string `gorm:"size:100" json:"usuario"`
	Codigo          string `gorm:"size:4" json:"codigo"`

	// Resolved relations, by business code. Empty string means unresolved;
	// a row without a client or tariff is still a valid ledger entry.
	CodCliente string `gorm:"size:100;index" json:"cod_cliente"`
	CodTarifa  string `gorm:"size:100;index" json:"cod_tarifa"`

	// Computed fields (fee engine output, stored unrounded).
	Saldo            decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"saldo"`
	Comision         decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"comision"`
	LmPagar          decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"lm_pagar"`
	GananciaReferido decimal.Decimal `gorm:"type:numeric(18,4);not null" json:"ganancia_referido"`

	CreatedAt time.Time `json:"created_at"`
}
