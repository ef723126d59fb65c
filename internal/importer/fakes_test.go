package importer

import (
	"fmt"

	"github.com/leonardoAndre7/banco-ledger/internal/models"
)

// fakeRegistry is an in-memory Registry for tests.
type fakeRegistry struct {
	clients []*models.Client
	tariffs []*models.Tariff

	failAll bool
}

func (r *fakeRegistry) FindClientByDNI(dni string) (*models.Client, error) {
	if r.failAll {
		return nil, fmt.Errorf("registry down")
	}
	for _, c := range r.clients {
		if c.DNI == dni {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeRegistry) FindClientByCode(code string) (*models.Client, error) {
	if r.failAll {
		return nil, fmt.Errorf("registry down")
	}
	for _, c := range r.clients {
		if c.CodCliente == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeRegistry) FindTariffByCode(code string) (*models.Tariff, error) {
	if r.failAll {
		return nil, fmt.Errorf("registry down")
	}
	for _, t := range r.tariffs {
		if t.CodTarifa == code {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeRegistry) ListClients() ([]models.Client, error) {
	out := make([]models.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeRegistry) ListTariffs() ([]models.Tariff, error) {
	out := make([]models.Tariff, 0, len(r.tariffs))
	for _, t := range r.tariffs {
		out = append(out, *t)
	}
	return out, nil
}

// fakeLedger is an in-memory Ledger for tests.
type fakeLedger struct {
	existing map[string]bool
	inserted []*models.Transaction

	// insertErr[codBCP] makes Insert fail for that code.
	insertErr map[string]error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{existing: map[string]bool{}, insertErr: map[string]error{}}
}

func (l *fakeLedger) Exists(codBCP string) (bool, error) {
	return l.existing[codBCP], nil
}

func (l *fakeLedger) Insert(tx *models.Transaction) error {
	if err := l.insertErr[tx.CodBCP]; err != nil {
		return err
	}
	l.existing[tx.CodBCP] = true
	l.inserted = append(l.inserted, tx)
	return nil
}
