package importer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/leonardoAndre7/banco-ledger/internal/models"
)

// Coordinator drives the two-phase import: a side-effect-free preview pass
// and a persisting confirm pass. One batch runs start to finish on one
// goroutine; rows are never processed concurrently.
type Coordinator struct {
	Registry Registry
	Ledger   Ledger

	// FallbackTariffCode is consulted only when neither a client tariff
	// nor an explicit default tariff resolves.
	FallbackTariffCode string

	// AutogenPrefix prefixes codes generated for rows with a blank
	// transaction code at confirm time.
	AutogenPrefix string
}

// PreviewOptions are the upload-form defaults applied to every row.
type PreviewOptions struct {
	DefaultClient *models.Client
	DefaultTariff *models.Tariff
	SaldoInicial  decimal.Decimal
}

// PreviewRow is one display row of the editable preview. Identity fields
// come from normalization and resolution; fee fields are computed the same
// way confirm will compute them, formatted to two decimals for display.
type PreviewRow struct {
	Index int `json:"index"`

	CodBCP          string `json:"cod_bcp"`
	Fecha           string `json:"fecha"`
	FechaValuta     string `json:"fecha_valuta"`
	Descripcion     string `json:"descripcion"`
	Monto           string `json:"monto"`
	SucursalAgencia string `json:"sucursal_agencia"`
	NOperacion      string `json:"n_operacion"`
	Usuario         string `json:"usuario"`

	DNICliente                  string `json:"dni_cliente"`
	Cliente                     string `json:"cliente"`
	ClienteNombre               string `json:"cliente_nombre"`
	ClienteApellidos            string `json:"cliente_apellidos"`
	Correo                      string `json:"correo"`
	Celular                     string `json:"celular"`
	Status                      string `json:"status"`
	Provincia                   string `json:"provincia"`
	CodigoReferido              string `json:"codigo_referido"`
	NombreReferido              string `json:"nombre_referido"`
	CuentaBancoReferido         string `json:"cuenta_banco_referido"`
	CuentaInterbancarioReferido string `json:"cuenta_interbancario_referido"`

	Tarifa       string `json:"tarifa"`
	SaldoInicial string `json:"saldo_inicial"`

	Saldo            string `json:"saldo"`
	Comision         string `json:"comision"`
	LmPagar          string `json:"lm_pagar"`
	GananciaReferido string `json:"ganancia_referido"`
}

// Preview normalizes and resolves every raw row and computes its fees
// without touching the ledger. It can be called any number of times; the
// transaction code is provisional here and only checked for uniqueness at
// confirm time.
func (co *Coordinator) Preview(rows []RawRow, opts PreviewOptions) []PreviewRow {
	out := make([]PreviewRow, 0, len(rows))

	for i, raw := range rows {
		rec := Normalize(raw)

		client := ResolveClient(co.Registry, rec.DNI, opts.DefaultClient)
		tariff := ResolveTariff(co.Registry, client, opts.DefaultTariff, co.FallbackTariffCode)
		fees := ComputeFees(rec.Monto, opts.SaldoInicial, tariff, client)

		row := PreviewRow{
			Index:           i,
			CodBCP:          rec.CodBCP,
			Fecha:           formatDate(rec.Fecha),
			FechaValuta:     formatDate(rec.FechaValuta),
			Descripcion:     rec.Descripcion,
			Monto:           rec.Monto.StringFixed(2),
			SucursalAgencia: rec.SucursalAgencia,
			NOperacion:      rec.NOperacion,
			Usuario:         rec.Usuario,

			DNICliente:   rec.DNI,
			SaldoInicial: opts.SaldoInicial.StringFixed(2),

			Saldo:            fees.Saldo.StringFixed(2),
			Comision:         fees.Comision.StringFixed(2),
			LmPagar:          fees.LmPagar.StringFixed(2),
			GananciaReferido: fees.GananciaReferido.StringFixed(2),
		}

		if client != nil {
			row.Cliente = client.CodCliente
			row.ClienteNombre = client.Nombre
			row.ClienteApellidos = client.Apellidos
			row.Correo = client.Correo
			row.Celular = client.Celular
			row.Status = client.Status
			row.Provincia = client.Provincia
			row.CodigoReferido = client.CodigoReferido
			row.NombreReferido = client.NombreReferido
			row.CuentaBancoReferido = client.CuentaBancoReferido
			row.CuentaInterbancarioReferido = client.CuentaInterbancarioReferido
		}
		if tariff != nil {
			row.Tarifa = tariff.CodTarifa
		}

		out = append(out, row)
	}

	return out
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
