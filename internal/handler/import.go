package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/leonardoAndre7/banco-ledger/internal/config"
	"github.com/leonardoAndre7/banco-ledger/internal/importer"
	"github.com/leonardoAndre7/banco-ledger/internal/store"
	"github.com/leonardoAndre7/banco-ledger/internal/util"
)

// ImportHandler serves the two-phase statement import: a multipart XLSX
// upload that returns an editable preview, and a confirm endpoint that
// persists the (possibly edited) rows.
type ImportHandler struct {
	Registry    importer.Registry
	Coordinator *importer.Coordinator
}

func NewImportHandler(db *gorm.DB, cfg config.ImportConfig) *ImportHandler {
	registry := store.NewGormRegistry(db)
	return &ImportHandler{
		Registry: registry,
		Coordinator: &importer.Coordinator{
			Registry:           registry,
			Ledger:             store.NewGormLedger(db),
			FallbackTariffCode: cfg.DefaultTariffCode,
			AutogenPrefix:      cfg.AutogenPrefix,
		},
	}
}

// Preview handles POST /api/import/preview. Form fields: "archivo" (the
// .xlsx file), optional "cliente" and "tarifa" default codes and an
// optional "saldo_inicial" starting-balance override. Nothing is
// persisted; the preview can be re-requested freely.
func (h *ImportHandler) Preview(c *gin.Context) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "archivo Excel (.xlsx) requerido")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "no se pudo abrir el archivo")
		return
	}
	defer file.Close()

	rows, err := readSheetRows(file)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, fmt.Sprintf("archivo inválido: %v", err))
		return
	}

	opts := importer.PreviewOptions{
		SaldoInicial: importer.ParseAmount(c.PostForm("saldo_inicial")),
	}

	// Default client/tariff are optional; an unknown code just means no
	// default, same as leaving the field blank.
	if code := c.PostForm("cliente"); code != "" {
		if cl, err := h.Registry.FindClientByCode(code); err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando cliente")
			return
		} else if cl != nil {
			opts.DefaultClient = cl
		}
	}
	if code := c.PostForm("tarifa"); code != "" {
		if t, err := h.Registry.FindTariffByCode(code); err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando tarifa")
			return
		} else if t != nil {
			opts.DefaultTariff = t
		}
	}

	preview := h.Coordinator.Preview(rows, opts)

	clients, err := h.Registry.ListClients()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando clientes")
		return
	}
	tariffs, err := h.Registry.ListTariffs()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando tarifas")
		return
	}

	util.Success(c, util.Response{
		"batch_id": uuid.New().String(),
		"rows":     preview,
		"clientes": clients,
		"tarifas":  tariffs,
	})
}

// Confirm handles POST /api/import/confirm with the column-aligned
// confirmation payload. The response always carries the saved count and
// the per-row error list; a failing row never aborts the batch.
func (h *ImportHandler) Confirm(c *gin.Context) {
	var payload importer.ConfirmPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "parámetros inválidos")
		return
	}

	res := h.Coordinator.Confirm(&payload)

	util.Success(c, util.Response{
		"saved":  res.Saved,
		"errors": res.Errors,
	})
}

// readSheetRows reads the first sheet of an XLSX stream into raw rows,
// using the first row as column labels.
func readSheetRows(r io.Reader) ([]importer.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("el archivo no tiene hojas")
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	headers := cells[0]
	rows := make([]importer.RawRow, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(importer.RawRow, len(headers))
		for j, label := range headers {
			if j < len(line) {
				row[label] = line[j]
			} else {
				row[label] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
