package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leonardoAndre7/banco-ledger/internal/models"
	"github.com/leonardoAndre7/banco-ledger/internal/util"
)

// TransactionHandler serves read access to the committed ledger. Entries
// are append-only; there is no update or delete path.
type TransactionHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewTransactionHandler(db *gorm.DB, pageSize int) *TransactionHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &TransactionHandler{DB: db, PageSize: pageSize}
}

type transactionResp struct {
	ID              uint   `json:"id"`
	CodBCP          string `json:"cod_bcp"`
	Fecha           string `json:"fecha"`
	FechaValuta     string `json:"fecha_valuta"`
	Descripcion     string `json:"descripcion"`
	Monto           string `json:"monto"`
	SucursalAgencia string `json:"sucursal_agencia"`
	NOperacion      string `json:"n_operacion"`
	Usuario         string `json:"usuario"`
	Codigo          string `json:"codigo"`
	CodCliente      string `json:"cod_cliente"`
	CodTarifa       string `json:"cod_tarifa"`

	Saldo            string `json:"saldo"`
	Comision         string `json:"comision"`
	LmPagar          string `json:"lm_pagar"`
	GananciaReferido string `json:"ganancia_referido"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	fmtDate := func(d *time.Time) string {
		if d == nil {
			return ""
		}
		return d.Format("2006-01-02")
	}
	return transactionResp{
		ID:              t.ID,
		CodBCP:          t.CodBCP,
		Fecha:           fmtDate(t.Fecha),
		FechaValuta:     fmtDate(t.FechaValuta),
		Descripcion:     t.Descripcion,
		Monto:           t.Monto.StringFixed(2),
		SucursalAgencia: t.SucursalAgencia,
		NOperacion:      t.NOperacion,
		Usuario:         t.Usuario,
		Codigo:          t.Codigo,
		CodCliente:      t.CodCliente,
		CodTarifa:       t.CodTarifa,

		// money is stored unrounded; round only here for display
		Saldo:            t.Saldo.StringFixed(2),
		Comision:         t.Comision.StringFixed(2),
		LmPagar:          t.LmPagar.StringFixed(2),
		GananciaReferido: t.GananciaReferido.StringFixed(2),
	}
}

// List handles GET /api/transactions with optional start/end date filters
// (YYYY-MM-DD, on fecha) and page/page_size pagination.
func (h *TransactionHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.PageSize)))
	if size <= 0 || size > 200 {
		size = h.PageSize
	}
	offset := (page - 1) * size

	base := h.DB.Model(&models.Transaction{})

	if startStr := c.Query("start"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "fecha de inicio inválida, use YYYY-MM-DD")
			return
		}
		base = base.Where("fecha >= ?", start)
	}
	if endStr := c.Query("end"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "fecha de fin inválida, use YYYY-MM-DD")
			return
		}
		// inclusive end of day
		base = base.Where("fecha < ?", end.Add(24*time.Hour))
	}
	if cliente := c.Query("cliente"); cliente != "" {
		base = base.Where("cod_cliente = ?", cliente)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando operaciones")
		return
	}

	var txs []models.Transaction
	if err := base.Session(&gorm.Session{}).
		Order("fecha DESC, id DESC").
		Limit(size).
		Offset(offset).
		Find(&txs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "error consultando operaciones")
		return
	}

	items := make([]transactionResp, 0, len(txs))
	for i := range txs {
		items = append(items, toTransactionResp(&txs[i]))
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
