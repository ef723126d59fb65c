package importer

import (
	"fmt"

	"github.com/leonardoAndre7/banco-ledger/internal/models"
)

// Ledger is the committed-transaction store contract: a uniqueness probe
// and a row-atomic insert.
type Ledger interface {
	Exists(codBCP string) (bool, error)
	Insert(tx *models.Transaction) error
}

// ConfirmPayload carries the user-confirmed preview back as one ordered
// value list per field, aligned by original row index. The description
// list defines the batch size.
type ConfirmPayload struct {
	CodBCP          []string `json:"cod_bcp"`
	Fecha           []string `json:"fecha"`
	FechaValuta     []string `json:"fecha_valuta"`
	Descripcion     []string `json:"descripcion"`
	Monto           []string `json:"monto"`
	SucursalAgencia []string `json:"sucursal_agencia"`
	NOperacion      []string `json:"n_operacion"`
	Usuario         []string `json:"usuario"`
	SaldoInicial    []string `json:"saldo_inicial"`
	Codigo          []string `json:"codigo"`
	Cliente         []string `json:"cliente"`
	Tarifa          []string `json:"tarifa"`
}

// ConfirmResult summarizes a confirm pass. Duplicates appear in neither
// count: they are skipped, not errors.
type ConfirmResult struct {
	Saved  int      `json:"saved"`
	Errors []string `json:"errors"`
}

// Confirm persists a confirmed batch. Per row: re-parse every field with
// the same tolerant rules as preview, resolve client and tariff by the
// codes the user confirmed (the DNI heuristic is not re-run here, the user
// may have overridden the match), skip rows whose transaction code already
// exists in the ledger, recompute the fees and insert. A failing row is
// recorded as "Fila <i>: ..." and the batch moves on; nothing aborts it.
func (co *Coordinator) Confirm(p *ConfirmPayload) *ConfirmResult {
	res := &ConfirmResult{Errors: []string{}}

	total := len(p.Descripcion)
	for i := 0; i < total; i++ {
		if err := co.confirmRow(p, i); err != nil {
			if err != errDuplicate {
				res.Errors = append(res.Errors, fmt.Sprintf("Fila %d: %v", i, err))
			}
			continue
		}
		res.Saved++
	}

	return res
}

// errDuplicate marks the silent-skip path: not saved, not an error.
var errDuplicate = fmt.Errorf("duplicate transaction code")

func (co *Coordinator) confirmRow(p *ConfirmPayload, i int) error {
	codBCP := at(p.CodBCP, i)

	// Parse failures on optional fields degrade to defaults, same rules
	// as the preview pass.
	fecha := ParseDate(at(p.Fecha, i))
	fechaValuta := ParseDate(at(p.FechaValuta, i))
	monto := ParseAmount(at(p.Monto, i))
	saldoInicial := ParseAmount(at(p.SaldoInicial, i))

	var client *models.Client
	if code := at(p.Cliente, i); code != "" {
		c, err := co.Registry.FindClientByCode(code)
		if err != nil {
			return fmt.Errorf("buscar cliente %q: %w", code, err)
		}
		client = c
	}

	var tariff *models.Tariff
	if code := at(p.Tarifa, i); code != "" {
		t, err := co.Registry.FindTariffByCode(code)
		if err != nil {
			return fmt.Errorf("buscar tarifa %q: %w", code, err)
		}
		tariff = t
	}

	if codBCP != "" {
		exists, err := co.Ledger.Exists(codBCP)
		if err != nil {
			return fmt.Errorf("verificar duplicado %q: %w", codBCP, err)
		}
		if exists {
			return errDuplicate
		}
	} else {
		// Blank source code: generate one from the row index so
		// uniqueness holds within the batch.
		codBCP = fmt.Sprintf("%s%d", co.autogenPrefix(), i)
	}

	// Fees are recomputed here even though the preview showed them: the
	// user may have changed the client, tariff or starting balance.
	fees := ComputeFees(monto, saldoInicial, tariff, client)

	tx := &models.Transaction{
		CodBCP:          codBCP,
		Fecha:           fecha,
		FechaValuta:     fechaValuta,
		Descripcion:     at(p.Descripcion, i),
		Monto:           monto,
		SucursalAgencia: at(p.SucursalAgencia, i),
		NOperacion:      at(p.NOperacion, i),
		Usuario:         at(p.Usuario, i),
		Codigo:          at(p.Codigo, i),

		Saldo:            fees.Saldo,
		Comision:         fees.Comision,
		LmPagar:          fees.LmPagar,
		GananciaReferido: fees.GananciaReferido,
	}
	if client != nil {
		tx.CodCliente = client.CodCliente
	}
	if tariff != nil {
		tx.CodTarifa = tariff.CodTarifa
	}

	if err := co.Ledger.Insert(tx); err != nil {
		return fmt.Errorf("guardar: %w", err)
	}
	return nil
}

func (co *Coordinator) autogenPrefix() string {
	if co.AutogenPrefix == "" {
		return "autogen_"
	}
	return co.AutogenPrefix
}

// at returns list[i] or "" when the list is shorter; the confirm payload
// lists are aligned by position but not guaranteed equal length.
func at(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}
