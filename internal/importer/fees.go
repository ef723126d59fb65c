package importer

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/leonardoAndre7/banco-ledger/internal/models"
)

// Commission tiering threshold. Strictly above it the percentage cost
// applies; at or below it the fixed cost applies.
var commissionThreshold = decimal.NewFromInt(1500)

// Referral program: only code 6 is recognized. Above the threshold the
// referrer earns 0.1% of the amount, otherwise a flat 1.50.
const referralProgramCode = 6

var (
	referralRate = decimal.New(1, -3)  // 0.001
	referralFlat = decimal.New(15, -1) // 1.5
)

// Fees is the fee engine output. Values carry full precision; rounding to
// two places happens only at display and export.
type Fees struct {
	Saldo            decimal.Decimal
	Comision         decimal.Decimal
	LmPagar          decimal.Decimal
	GananciaReferido decimal.Decimal
}

// ComputeFees derives the four computed fields of a ledger entry. Pure and
// deterministic: preview and confirm call it with the same inputs and must
// get identical results. A missing tariff or client is substituted with
// zero, never reported as a failure.
func ComputeFees(monto, saldoInicial decimal.Decimal, tariff *models.Tariff, client *models.Client) Fees {
	f := Fees{Saldo: monto.Add(saldoInicial)}

	if tariff != nil {
		if monto.GreaterThan(commissionThreshold) {
			f.Comision = monto.Mul(tariff.CostoPorPorcentaje)
		} else {
			f.Comision = tariff.CostoFijo
		}
	} else {
		f.Comision = decimal.Zero
	}

	f.LmPagar = f.Saldo.Sub(f.Comision)

	f.GananciaReferido = decimal.Zero
	if client != nil && referralProgram(client.CodigoReferido) == referralProgramCode {
		if monto.GreaterThan(commissionThreshold) {
			f.GananciaReferido = monto.Mul(referralRate)
		} else {
			f.GananciaReferido = referralFlat
		}
	}

	return f
}

// referralProgram parses a client referral code into a program number;
// unparsable or absent codes belong to no program.
func referralProgram(codigo string) int {
	n, err := strconv.Atoi(strings.TrimSpace(codigo))
	if err != nil {
		return 0
	}
	return n
}
