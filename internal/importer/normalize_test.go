package importer

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"COD_BCP":               "COD_BCP",
		"  cod_bcp  ":           "COD_BCP",
		"DESCRIPCIÓN_OPERACIÓN": "DESCRIPCION_OPERACION",
		"descripcion operacion": "DESCRIPCION_OPERACION",
		"N_OPERACIÓN":           "N_OPERACION",
		"Sucursal  Agencia":     "SUCURSAL_AGENCIA",
	}
	for in, want := range cases {
		if got := NormalizeKey(in); got != want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeAliases(t *testing.T) {
	row := RawRow{
		"COD_BCP ":              "OP-77",
		"FECHA":                 "2024-03-05",
		"FECHA_VAL":             "06/03/2024",
		"DESCRIPCIÓN_OPERACIÓN": "PAGO SERVICIO 45678912",
		"MTO":                   "1,250.75",
		"SUCURSAL_AGENCIA":      "LIMA 01",
		"N_OPERACIÓN":           "000123",
		"USUARIO":               "cajero1",
	}

	rec := Normalize(row)

	if rec.CodBCP != "OP-77" {
		t.Errorf("CodBCP = %q, want OP-77", rec.CodBCP)
	}
	if rec.Fecha == nil || rec.Fecha.Format("2006-01-02") != "2024-03-05" {
		t.Errorf("Fecha = %v, want 2024-03-05", rec.Fecha)
	}
	if rec.FechaValuta == nil || rec.FechaValuta.Format("2006-01-02") != "2024-03-06" {
		t.Errorf("FechaValuta = %v, want 2024-03-06", rec.FechaValuta)
	}
	if rec.Descripcion != "PAGO SERVICIO 45678912" {
		t.Errorf("Descripcion = %q", rec.Descripcion)
	}
	if !rec.Monto.Equal(decimal.RequireFromString("1250.75")) {
		t.Errorf("Monto = %s, want 1250.75", rec.Monto)
	}
	if rec.SucursalAgencia != "LIMA 01" || rec.NOperacion != "000123" || rec.Usuario != "cajero1" {
		t.Errorf("optional fields = %q %q %q", rec.SucursalAgencia, rec.NOperacion, rec.Usuario)
	}
	if rec.DNI != "45678912" {
		t.Errorf("DNI = %q, want 45678912", rec.DNI)
	}
}

func TestNormalizeMissingFields(t *testing.T) {
	rec := Normalize(RawRow{"DESCRIPCION_OPERACION": "SIN ID"})

	if rec.CodBCP != "" {
		t.Errorf("CodBCP = %q, want empty", rec.CodBCP)
	}
	if rec.Fecha != nil || rec.FechaValuta != nil {
		t.Errorf("dates should be nil, got %v %v", rec.Fecha, rec.FechaValuta)
	}
	if !rec.Monto.IsZero() {
		t.Errorf("Monto = %s, want 0", rec.Monto)
	}
	if rec.DNI != "" {
		t.Errorf("DNI = %q, want empty", rec.DNI)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "   ", "no-date", "2024-13-45", "32/13/2024"} {
		if got := ParseDate(s); got != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", s, got)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"1500":          "1500",
		"1,500.25":      "1500.25",
		"12,345,678.90": "12345678.90",
		"-42.10":        "-42.10",
		"abc":           "0",
		"":              "0",
		"  ":            "0",
	}
	for in, want := range cases {
		if got := ParseAmount(in); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestExtractDNI(t *testing.T) {
	cases := map[string]string{
		"PAGO SERVICIO 45678912":  "45678912",
		"SIN ID":                  "",
		"45678912 PAGO SERVICIO":  "",
		"TRANSFERENCIA 123456789": "23456789", // last 8 of a longer run
		"ABONO 1234567":           "",
	}
	for in, want := range cases {
		if got := ExtractDNI(in); got != want {
			t.Errorf("ExtractDNI(%q) = %q, want %q", in, got, want)
		}
	}
}
