package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/leonardoAndre7/banco-ledger/internal/models"
)

// GormLedger implements importer.Ledger. Each Insert is its own statement:
// the confirm phase commits whatever succeeded row by row instead of
// rolling the batch back as a whole.
type GormLedger struct {
	DB *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{DB: db}
}

func (l *GormLedger) Exists(codBCP string) (bool, error) {
	var count int64
	if err := l.DB.Model(&models.Transaction{}).
		Where("cod_bcp = ?", codBCP).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check transaction code: %w", err)
	}
	return count > 0, nil
}

func (l *GormLedger) Insert(tx *models.Transaction) error {
	if err := l.DB.Create(tx).Error; err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}
