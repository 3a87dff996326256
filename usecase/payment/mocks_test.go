package payment

import (
	"context"
	"fmt"

	"github.com/bankgo/mspayment/domain"
)

// fakeRepo is an in-memory PaymentRepository preserving insertion order.
type fakeRepo struct {
	records []domain.Payment
	nextID  int

	listCalls int

	existsErr error
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func (r *fakeRepo) Exists(ctx context.Context, id string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, p := range r.records {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	for _, p := range r.records {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (r *fakeRepo) List(ctx context.Context) ([]domain.Payment, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Payment, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *fakeRepo) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if payment.ID == "" {
		r.nextID++
		payment.ID = fmt.Sprintf("pay-%d", r.nextID)
	}
	r.records = append(r.records, *payment)
	return payment, nil
}

func (r *fakeRepo) Update(ctx context.Context, payment *domain.Payment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for i, p := range r.records {
		if p.ID == payment.ID {
			r.records[i] = *payment
			return nil
		}
	}
	return domain.ErrPaymentNotFound
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i, p := range r.records {
		if p.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrPaymentNotFound
}

// mockActiveLookup counts invocations and returns a canned result.
type mockActiveLookup struct {
	calls  int
	result *domain.ActiveLookupResult
	err    error
}

func (m *mockActiveLookup) FindByCode(ctx context.Context, code string) (*domain.ActiveLookupResult, error) {
	m.calls++
	return m.result, m.err
}

type mockClientLookup struct {
	calls  int
	result *domain.ClientLookupResult
	err    error
}

func (m *mockClientLookup) FindByCode(ctx context.Context, code string) (*domain.ClientLookupResult, error) {
	m.calls++
	return m.result, m.err
}

func activeFound(code string) *mockActiveLookup {
	return &mockActiveLookup{result: &domain.ActiveLookupResult{Data: &domain.Active{Code: code}}}
}

func activeMissing() *mockActiveLookup {
	return &mockActiveLookup{result: &domain.ActiveLookupResult{}}
}

func clientFound(code string, typ domain.PaymentType) *mockClientLookup {
	return &mockClientLookup{result: &domain.ClientLookupResult{Data: &domain.Client{Code: code, Type: typ}}}
}

func clientMissing() *mockClientLookup {
	return &mockClientLookup{result: &domain.ClientLookupResult{}}
}

// fakeCache is an in-memory BalanceCache with call counters.
type fakeCache struct {
	values        map[string]float64
	gets          int
	sets          int
	invalidations int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]float64)}
}

func (c *fakeCache) Get(ctx context.Context, clientID string) (float64, bool, error) {
	c.gets++
	total, ok := c.values[clientID]
	return total, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, clientID string, total float64) error {
	c.sets++
	c.values[clientID] = total
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, clientID string) error {
	c.invalidations++
	delete(c.values, clientID)
	return nil
}

// fakeAudit records operations in order.
type fakeAudit struct {
	operations []string
}

func (a *fakeAudit) Record(ctx context.Context, operation string, pay *domain.Payment) error {
	a.operations = append(a.operations, operation)
	return nil
}
