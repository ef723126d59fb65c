package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/leonardoAndre7/banco-ledger/internal/models"
	"github.com/leonardoAndre7/banco-ledger/internal/util"
)

// ExportHandler exports the committed ledger as CSV or XLSX. Money fields
// are rounded to two decimals on the way out; stored values keep full
// precision.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{
	"COD_BCP", "FECHA", "FECHA_VALUTA", "DESCRIPCION_OPERACION",
	"MONTO", "SUCURSAL_AGENCIA", "N_OPERACION", "USUARIO", "CODIGO",
	"COD_CLIENTE", "COD_TARIFA",
	"SALDO", "COMISION", "LM_PAGAR", "GANANCIA_REFERIDO",
}

func exportRecord(t *models.Transaction) []string {
	fmtDate := func(d *time.Time) string {
		if d == nil {
			return ""
		}
		return d.Format("2006-01-02")
	}
	return []string{
		t.CodBCP,
		fmtDate(t.Fecha),
		fmtDate(t.FechaValuta),
		t.Descripcion,
		t.Monto.StringFixed(2),
		t.SucursalAgencia,
		t.NOperacion,
		t.Usuario,
		t.Codigo,
		t.CodCliente,
		t.CodTarifa,
		t.Saldo.StringFixed(2),
		t.Comision.StringFixed(2),
		t.LmPagar.StringFixed(2),
		t.GananciaReferido.StringFixed(2),
	}
}

func (h *ExportHandler) loadTransactions() ([]models.Transaction, error) {
	var txs []models.Transaction
	err := h.DB.Order("fecha ASC, id ASC").Find(&txs).Error
	return txs, err
}

// ExportCSV handles GET /api/export/csv.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	txs, err := h.loadTransactions()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando operaciones")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"operaciones_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so Excel renders accents correctly
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range txs {
		writer.Write(exportRecord(&txs[i]))
	}
}

// ExportXLSX handles GET /api/export/xlsx.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	txs, err := h.loadTransactions()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando operaciones")
		return
	}

	f := excelize.NewFile()
	sheetName := "Operaciones"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error al crear la hoja")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIdx := range txs {
		record := exportRecord(&txs[rowIdx])
		for colIdx, value := range record {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"operaciones_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error al exportar")
	}
}
