package handler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/valyala/fasthttp"

	"github.com/bankgo/mspayment/domain"
	paymentUC "github.com/bankgo/mspayment/usecase/payment"
)

type memoryRepo struct {
	records []domain.Payment
}

func (r *memoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	for _, p := range r.records {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	for _, p := range r.records {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (r *memoryRepo) List(ctx context.Context) ([]domain.Payment, error) {
	out := make([]domain.Payment, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *memoryRepo) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment.ID == "" {
		payment.ID = "pay-created"
	}
	r.records = append(r.records, *payment)
	return payment, nil
}

func (r *memoryRepo) Update(ctx context.Context, payment *domain.Payment) error {
	for i, p := range r.records {
		if p.ID == payment.ID {
			r.records[i] = *payment
			return nil
		}
	}
	return domain.ErrPaymentNotFound
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	for i, p := range r.records {
		if p.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrPaymentNotFound
}

type staticActiveLookup struct {
	result *domain.ActiveLookupResult
}

func (s staticActiveLookup) FindByCode(ctx context.Context, code string) (*domain.ActiveLookupResult, error) {
	return s.result, nil
}

type staticClientLookup struct {
	result *domain.ClientLookupResult
}

func (s staticClientLookup) FindByCode(ctx context.Context, code string) (*domain.ClientLookupResult, error) {
	return s.result, nil
}

func newPaymentHandler(repo *memoryRepo, clientType domain.PaymentType) *PaymentHandler {
	uc := paymentUC.New(
		repo,
		staticActiveLookup{result: &domain.ActiveLookupResult{Data: &domain.Active{Code: "A1"}}},
		staticClientLookup{result: &domain.ClientLookupResult{Data: &domain.Client{Code: "C1", Type: clientType}}},
		nil,
		nil,
		nil,
	)
	return NewPaymentHandler(uc, nil, nil)
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) (string, int, json.RawMessage) {
	t.Helper()
	var envelope struct {
		Message string          `json:"message"`
		Status  int             `json:"status"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(ctx.Response.Body(), &envelope); err != nil {
		t.Fatalf("invalid envelope %s: %v", ctx.Response.Body(), err)
	}
	return envelope.Message, envelope.Status, envelope.Data
}

func TestPaymentHandlerCreate(t *testing.T) {
	t.Run("Given matching types When posted Then 200 Done with the stored record", func(t *testing.T) {
		h := newPaymentHandler(&memoryRepo{}, domain.TypePersonal)

		var ctx fasthttp.RequestCtx
		ctx.SetUserValue("type", "1")
		ctx.Request.SetBody([]byte(`{"activeId":"A1","clientId":"C1","amount":50.0}`))

		h.Create(&ctx)

		if ctx.Response.StatusCode() != 200 {
			t.Fatalf("expected HTTP 200, got %d", ctx.Response.StatusCode())
		}
		message, status, data := decodeEnvelope(t, &ctx)
		if message != "Done" || status != 200 {
			t.Errorf("unexpected envelope: %q %d", message, status)
		}
		var pay domain.Payment
		if err := json.Unmarshal(data, &pay); err != nil {
			t.Fatalf("invalid payment payload: %v", err)
		}
		if pay.ID == "" || pay.DateRegistered.IsZero() {
			t.Errorf("expected id and dateRegistered, got %+v", pay)
		}
	})

	t.Run("Given a company client When posted with type 1 Then 400 with the mismatch message", func(t *testing.T) {
		h := newPaymentHandler(&memoryRepo{}, domain.TypeCompany)

		var ctx fasthttp.RequestCtx
		ctx.SetUserValue("type", "1")
		ctx.Request.SetBody([]byte(`{"activeId":"A1","clientId":"C1","amount":50.0}`))

		h.Create(&ctx)

		if ctx.Response.StatusCode() != 400 {
			t.Fatalf("expected HTTP 400, got %d", ctx.Response.StatusCode())
		}
		message, status, _ := decodeEnvelope(t, &ctx)
		if message != "The Active is not enabled for the client" || status != 400 {
			t.Errorf("unexpected envelope: %q %d", message, status)
		}
	})

	t.Run("Given a malformed body When posted Then 400 invalid payload", func(t *testing.T) {
		h := newPaymentHandler(&memoryRepo{}, domain.TypePersonal)

		var ctx fasthttp.RequestCtx
		ctx.SetUserValue("type", "1")
		ctx.Request.SetBody([]byte(`{`))

		h.Create(&ctx)

		if ctx.Response.StatusCode() != 400 {
			t.Fatalf("expected HTTP 400, got %d", ctx.Response.StatusCode())
		}
	})
}

func TestPaymentHandlerReads(t *testing.T) {
	t.Run("Given an unknown id When fetched Then 400 No Content", func(t *testing.T) {
		h := newPaymentHandler(&memoryRepo{}, domain.TypePersonal)

		var ctx fasthttp.RequestCtx
		ctx.SetUserValue("id", "missing")

		h.Get(&ctx)

		if ctx.Response.StatusCode() != 400 {
			t.Fatalf("expected HTTP 400, got %d", ctx.Response.StatusCode())
		}
		message, _, _ := decodeEnvelope(t, &ctx)
		if message != "No Content" {
			t.Errorf("unexpected message: %q", message)
		}
	})

	t.Run("Given an empty store When listed Then 400 No Content", func(t *testing.T) {
		h := newPaymentHandler(&memoryRepo{}, domain.TypePersonal)

		var ctx fasthttp.RequestCtx
		h.List(&ctx)

		if ctx.Response.StatusCode() != 400 {
			t.Fatalf("expected HTTP 400, got %d", ctx.Response.StatusCode())
		}
	})

	t.Run("Given stored payments When balance fetched Then 200 with the scalar total", func(t *testing.T) {
		repo := &memoryRepo{records: []domain.Payment{
			{ID: "pay-1", ClientID: "C1", Amount: 30},
			{ID: "pay-2", ClientID: "C1", Amount: 20},
			{ID: "pay-3", ClientID: "C2", Amount: 999},
		}}
		h := newPaymentHandler(repo, domain.TypePersonal)

		var ctx fasthttp.RequestCtx
		ctx.SetUserValue("idClient", "C1")

		h.Balance(&ctx)

		if ctx.Response.StatusCode() != 200 {
			t.Fatalf("expected HTTP 200, got %d", ctx.Response.StatusCode())
		}
		message, _, data := decodeEnvelope(t, &ctx)
		if message != "Done" {
			t.Errorf("unexpected message: %q", message)
		}
		var total float64
		if err := json.Unmarshal(data, &total); err != nil {
			t.Fatalf("invalid balance payload: %v", err)
		}
		if total != 50 {
			t.Errorf("expected 50, got %v", total)
		}
	})
}

func TestPaymentHandlerMutations(t *testing.T) {
	t.Run("Given an unknown id When updated Then 404 Not found", func(t *testing.T) {
		h := newPaymentHandler(&memoryRepo{}, domain.TypePersonal)

		var ctx fasthttp.RequestCtx
		ctx.SetUserValue("id", "missing")
		ctx.Request.SetBody([]byte(`{"activeId":"A1","clientId":"C1","amount":1}`))

		h.Update(&ctx)

		if ctx.Response.StatusCode() != 404 {
			t.Fatalf("expected HTTP 404, got %d", ctx.Response.StatusCode())
		}
		message, status, _ := decodeEnvelope(t, &ctx)
		if message != "Not found" || status != 404 {
			t.Errorf("unexpected envelope: %q %d", message, status)
		}
	})

	t.Run("Given an existing id When deleted Then 200 Done with null data", func(t *testing.T) {
		repo := &memoryRepo{records: []domain.Payment{{ID: "pay-1", ClientID: "C1"}}}
		h := newPaymentHandler(repo, domain.TypePersonal)

		var ctx fasthttp.RequestCtx
		ctx.SetUserValue("id", "pay-1")

		h.Delete(&ctx)

		if ctx.Response.StatusCode() != 200 {
			t.Fatalf("expected HTTP 200, got %d", ctx.Response.StatusCode())
		}
		message, _, data := decodeEnvelope(t, &ctx)
		if message != "Done" {
			t.Errorf("unexpected message: %q", message)
		}
		if string(data) != "null" {
			t.Errorf("expected null data, got %s", data)
		}
		if len(repo.records) != 0 {
			t.Errorf("record not deleted: %+v", repo.records)
		}
	})
}
