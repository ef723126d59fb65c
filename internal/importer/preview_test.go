package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPreviewResolvesByDescriptionDNI(t *testing.T) {
	reg := testRegistry()
	co := &Coordinator{Registry: reg, Ledger: newFakeLedger()}

	rows := []RawRow{
		{
			"COD_BCP":               "OP-1",
			"FECHA":                 "2024-03-05",
			"DESCRIPCIÓN_OPERACIÓN": "PAGO SERVICIO 45678912",
			"MONTO":                 "2,000.00",
		},
		{
			"COD_BCP":               "OP-2",
			"DESCRIPCION_OPERACION": "SIN ID",
			"MONTO":                 "100",
		},
	}

	out := co.Preview(rows, PreviewOptions{SaldoInicial: decimal.RequireFromString("50")})

	assert.Len(t, out, 2)

	// row 0 matched C1 through the DNI suffix; C1 carries tariff T1
	assert.Equal(t, 0, out[0].Index)
	assert.Equal(t, "45678912", out[0].DNICliente)
	assert.Equal(t, "C1", out[0].Cliente)
	assert.Equal(t, "Ana", out[0].ClienteNombre)
	assert.Equal(t, "T1", out[0].Tarifa)
	assert.Equal(t, "2050.00", out[0].Saldo)
	assert.Equal(t, "9.00", out[0].Comision) // 2000 * 0.0045
	assert.Equal(t, "2041.00", out[0].LmPagar)
	assert.Equal(t, "0.00", out[0].GananciaReferido)

	// row 1 has no DNI and no defaults: empty client fields, zero commission
	assert.Equal(t, "", out[1].DNICliente)
	assert.Equal(t, "", out[1].Cliente)
	assert.Equal(t, "", out[1].Tarifa)
	assert.Equal(t, "150.00", out[1].Saldo)
	assert.Equal(t, "0.00", out[1].Comision)
}

func TestPreviewAppliesDefaults(t *testing.T) {
	reg := testRegistry()
	co := &Coordinator{Registry: reg, Ledger: newFakeLedger()}

	defClient, _ := reg.FindClientByCode("C2")
	defTariff, _ := reg.FindTariffByCode("T2")

	rows := []RawRow{{"DESCRIPCION_OPERACION": "SIN ID", "MONTO": "200"}}
	out := co.Preview(rows, PreviewOptions{
		DefaultClient: defClient,
		DefaultTariff: defTariff,
	})

	assert.Equal(t, "C2", out[0].Cliente)
	// C2 has no tariff code, so the explicit default applies
	assert.Equal(t, "T2", out[0].Tarifa)
	assert.Equal(t, "4.00", out[0].Comision)
}

func TestPreviewHasNoSideEffects(t *testing.T) {
	ledger := newFakeLedger()
	co := &Coordinator{Registry: testRegistry(), Ledger: ledger}

	rows := []RawRow{{"COD_BCP": "OP-1", "DESCRIPCION_OPERACION": "X", "MONTO": "10"}}
	for i := 0; i < 3; i++ {
		co.Preview(rows, PreviewOptions{})
	}

	assert.Empty(t, ledger.inserted)
	assert.Empty(t, ledger.existing)
}
