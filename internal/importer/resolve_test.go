package importer

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/leonardoAndre7/banco-ledger/internal/models"
)

func testRegistry() *fakeRegistry {
	return &fakeRegistry{
		clients: []*models.Client{
			{CodCliente: "C1", DNI: "45678912", Nombre: "Ana", Apellidos: "Quispe", CodTarifa: "T1"},
			{CodCliente: "C2", DNI: "11111111", Nombre: "Luis", Apellidos: "Rojas"},
		},
		tariffs: []*models.Tariff{
			{CodTarifa: "T1", Descripcion: "Estándar", CostoPorPorcentaje: decimal.RequireFromString("0.0045"), CostoFijo: decimal.RequireFromString("6.50")},
			{CodTarifa: "T2", Descripcion: "Preferente", CostoPorPorcentaje: decimal.RequireFromString("0.0030"), CostoFijo: decimal.RequireFromString("4.00")},
			{CodTarifa: "TDEF", Descripcion: "Fallback", CostoPorPorcentaje: decimal.RequireFromString("0.0100"), CostoFijo: decimal.RequireFromString("10.00")},
		},
	}
}

func TestResolveClientByDNI(t *testing.T) {
	reg := testRegistry()

	c := ResolveClient(reg, "45678912", nil)
	if c == nil || c.CodCliente != "C1" {
		t.Fatalf("ResolveClient = %+v, want C1", c)
	}
}

func TestResolveClientFallsBackToDefault(t *testing.T) {
	reg := testRegistry()
	def := &models.Client{CodCliente: "CD"}

	// no DNI at all
	if c := ResolveClient(reg, "", def); c != def {
		t.Errorf("empty DNI: got %+v, want default", c)
	}
	// DNI that matches nobody
	if c := ResolveClient(reg, "99999999", def); c != def {
		t.Errorf("unknown DNI: got %+v, want default", c)
	}
	// registry failure degrades to the default as well
	if c := ResolveClient(&fakeRegistry{failAll: true}, "45678912", def); c != def {
		t.Errorf("registry failure: got %+v, want default", c)
	}
}

func TestResolveClientNone(t *testing.T) {
	if c := ResolveClient(testRegistry(), "99999999", nil); c != nil {
		t.Errorf("got %+v, want nil", c)
	}
}

func TestResolveTariffPrecedence(t *testing.T) {
	reg := testRegistry()
	def := &models.Tariff{CodTarifa: "T2"}

	// client tariff wins over the explicit default
	withTariff, _ := reg.FindClientByCode("C1")
	if tf := ResolveTariff(reg, withTariff, def, "TDEF"); tf == nil || tf.CodTarifa != "T1" {
		t.Errorf("client tariff: got %+v, want T1", tf)
	}

	// client without a tariff code falls through to the default
	noTariff, _ := reg.FindClientByCode("C2")
	if tf := ResolveTariff(reg, noTariff, def, "TDEF"); tf != def {
		t.Errorf("default tariff: got %+v, want explicit default", tf)
	}

	// no client and no default: configured fallback code
	if tf := ResolveTariff(reg, nil, nil, "TDEF"); tf == nil || tf.CodTarifa != "TDEF" {
		t.Errorf("fallback code: got %+v, want TDEF", tf)
	}

	// nothing resolves
	if tf := ResolveTariff(reg, nil, nil, ""); tf != nil {
		t.Errorf("got %+v, want nil", tf)
	}
	if tf := ResolveTariff(reg, nil, nil, "NOPE"); tf != nil {
		t.Errorf("unknown fallback: got %+v, want nil", tf)
	}
}
