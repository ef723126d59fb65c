package importer

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RawRow is one spreadsheet row as read from the upload: free-form column
// label -> cell text. Labels are matched case/whitespace/accent-insensitively.
type RawRow map[string]string

// Record is the normalized form of one RawRow.
type Record struct {
	CodBCP          string
	Fecha           *time.Time
	FechaValuta     *time.Time
	Descripcion     string
	Monto           decimal.Decimal
	SucursalAgencia string
	NOperacion      string
	Usuario         string

	// DNI extracted from the trailing 8 digits of the description;
	// empty when the description carries none.
	DNI string
}

var dniSuffixRe = regexp.MustCompile(`(\d{8})\s*$`)

// accentReplacer folds the accented letters that show up in statement
// headers. Full unicode normalization is overkill for this column set.
var accentReplacer = strings.NewReplacer(
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U", "Ñ", "N",
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
)

// dateLayouts are tried in order; statements arrive with more than one
// date format depending on how the file was produced.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02-01-2006",
	time.RFC3339,
}

// NormalizeKey canonicalizes a column label: trimmed, upper-cased,
// accent-folded, inner spaces collapsed to underscores.
func NormalizeKey(label string) string {
	k := strings.ToUpper(strings.TrimSpace(label))
	k = accentReplacer.Replace(k)
	return strings.Join(strings.Fields(k), "_")
}

// Normalize parses one raw row into a Record. Every field degrades to its
// default on bad input: dates to nil, the amount to zero, strings to "".
// A row never fails to normalize.
func Normalize(row RawRow) Record {
	cells := make(map[string]string, len(row))
	for label, value := range row {
		cells[NormalizeKey(label)] = value
	}

	get := func(keys ...string) string {
		for _, k := range keys {
			if v := strings.TrimSpace(cells[k]); v != "" {
				return v
			}
		}
		return ""
	}

	rec := Record{
		CodBCP:          get("COD_BCP"),
		Fecha:           ParseDate(get("FECHA")),
		FechaValuta:     ParseDate(get("FECHA_VALUTA", "FECHA_VAL")),
		Descripcion:     get("DESCRIPCION_OPERACION"),
		Monto:           ParseAmount(get("MONTO", "MTO")),
		SucursalAgencia: get("SUCURSAL_AGENCIA"),
		NOperacion:      get("N_OPERACION"),
		Usuario:         get("USUARIO"),
	}
	rec.DNI = ExtractDNI(rec.Descripcion)
	return rec
}

// ParseDate parses a statement date, trying each known layout.
// Empty or unparsable input yields nil; dates are optional.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseAmount parses a fixed-point amount, stripping thousands separators.
// Unparsable input yields zero rather than an error: a bad cell must not
// sink the row it belongs to.
func ParseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ExtractDNI returns the trailing 8 consecutive digits of a description,
// or "" when there are none. Operators encode the client DNI as a suffix
// of the free-text description; this is the only automatic link between a
// bank row and a registry client.
func ExtractDNI(descripcion string) string {
	m := dniSuffixRe.FindStringSubmatch(descripcion)
	if m == nil {
		return ""
	}
	return m[1]
}
