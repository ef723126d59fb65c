package importer

import "github.com/leonardoAndre7/banco-ledger/internal/models"

// Registry is the read-only client/tariff lookup contract. Lookups return
// (nil, nil) when nothing matches; a non-nil error means the registry
// itself failed.
type Registry interface {
	FindClientByDNI(dni string) (*models.Client, error)
	FindClientByCode(code string) (*models.Client, error)
	FindTariffByCode(code string) (*models.Tariff, error)
	ListClients() ([]models.Client, error)
	ListTariffs() ([]models.Tariff, error)
}

// ResolveClient maps an extracted DNI to a registry client, falling back to
// the upload's default client. An unresolved client is not an error: the
// row keeps empty client fields and tariff resolution falls through to its
// own default.
func ResolveClient(reg Registry, dni string, def *models.Client) *models.Client {
	if dni != "" {
		if c, err := reg.FindClientByDNI(dni); err == nil && c != nil {
			return c
		}
	}
	return def
}

// ResolveTariff picks the tariff for a row. Precedence: the resolved
// client's own tariff code, then the upload's default tariff, then the
// configured fallback code. Never an error; nil means no tariff and a zero
// commission downstream.
func ResolveTariff(reg Registry, client *models.Client, def *models.Tariff, fallbackCode string) *models.Tariff {
	if client != nil && client.CodTarifa != "" {
		if t, err := reg.FindTariffByCode(client.CodTarifa); err == nil && t != nil {
			return t
		}
	}
	if def != nil {
		return def
	}
	if fallbackCode != "" {
		if t, err := reg.FindTariffByCode(fallbackCode); err == nil && t != nil {
			return t
		}
	}
	return nil
}
