package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/leonardoAndre7/banco-ledger/internal/models"
	"github.com/leonardoAndre7/banco-ledger/internal/util"
)

// RegistryHandler maintains the client/tariff registry. The import core
// only ever reads these tables; creation happens here.
type RegistryHandler struct {
	DB *gorm.DB
}

func NewRegistryHandler(db *gorm.DB) *RegistryHandler {
	return &RegistryHandler{DB: db}
}

func (h *RegistryHandler) ListClients(c *gin.Context) {
	var clients []models.Client
	if err := h.DB.Order("cod_cliente ASC").Find(&clients).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando clientes")
		return
	}
	util.Success(c, util.Response{"clientes": clients})
}

func (h *RegistryHandler) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "parámetros inválidos")
		return
	}

	client.ID = 0
	client.CodCliente = strings.TrimSpace(client.CodCliente)
	client.DNI = strings.TrimSpace(client.DNI)

	if client.CodCliente == "" || client.Nombre == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cod_cliente y nombre son obligatorios")
		return
	}
	if client.DNI != "" && len(client.DNI) != 8 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "el DNI debe tener 8 dígitos")
		return
	}

	var count int64
	if err := h.DB.Model(&models.Client{}).
		Where("cod_cliente = ?", client.CodCliente).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando clientes")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "el código de cliente ya existe")
		return
	}

	if err := h.DB.Create(&client).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error al crear cliente")
		return
	}

	util.Success(c, util.Response{"cliente": client})
}

func (h *RegistryHandler) ListTariffs(c *gin.Context) {
	var tariffs []models.Tariff
	if err := h.DB.Order("cod_tarifa ASC").Find(&tariffs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando tarifas")
		return
	}
	util.Success(c, util.Response{"tarifas": tariffs})
}

func (h *RegistryHandler) CreateTariff(c *gin.Context) {
	var tariff models.Tariff
	if err := c.ShouldBindJSON(&tariff); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "parámetros inválidos")
		return
	}

	tariff.ID = 0
	tariff.CodTarifa = strings.TrimSpace(tariff.CodTarifa)

	if tariff.CodTarifa == "" || tariff.Descripcion == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "cod_tarifa y descripcion son obligatorios")
		return
	}
	// both costs must be non-negative; only one ever applies per operation
	if tariff.CostoPorPorcentaje.LessThan(decimal.Zero) || tariff.CostoFijo.LessThan(decimal.Zero) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "los costos no pueden ser negativos")
		return
	}

	var count int64
	if err := h.DB.Model(&models.Tariff{}).
		Where("cod_tarifa = ?", tariff.CodTarifa).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando tarifas")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "el código de tarifa ya existe")
		return
	}

	if err := h.DB.Create(&tariff).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error al crear tarifa")
		return
	}

	util.Success(c, util.Response{"tarifa": tariff})
}
