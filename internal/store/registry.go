package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/leonardoAndre7/banco-ledger/internal/models"
)

// GormRegistry implements importer.Registry over the client/tariff tables.
// Not-found is (nil, nil): an unmatched lookup is a normal outcome of the
// import flow, not a failure.
type GormRegistry struct {
	DB *gorm.DB
}

func NewGormRegistry(db *gorm.DB) *GormRegistry {
	return &GormRegistry{DB: db}
}

func (r *GormRegistry) FindClientByDNI(dni string) (*models.Client, error) {
	var c models.Client
	if err := r.DB.Where("dni = ?", dni).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find client by dni: %w", err)
	}
	return &c, nil
}

func (r *GormRegistry) FindClientByCode(code string) (*models.Client, error) {
	var c models.Client
	if err := r.DB.Where("cod_cliente = ?", code).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find client by code: %w", err)
	}
	return &c, nil
}

func (r *GormRegistry) FindTariffByCode(code string) (*models.Tariff, error) {
	var t models.Tariff
	if err := r.DB.Where("cod_tarifa = ?", code).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find tariff by code: %w", err)
	}
	return &t, nil
}

func (r *GormRegistry) ListClients() ([]models.Client, error) {
	var clients []models.Client
	if err := r.DB.Order("cod_cliente ASC").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *GormRegistry) ListTariffs() ([]models.Tariff, error) {
	var tariffs []models.Tariff
	if err := r.DB.Order("cod_tarifa ASC").Find(&tariffs).Error; err != nil {
		return nil, fmt.Errorf("list tariffs: %w", err)
	}
	return tariffs, nil
}
