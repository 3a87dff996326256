package handler

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/bankgo/mspayment/api/transport"
	"github.com/bankgo/mspayment/domain"
	"github.com/bankgo/mspayment/pkg/httpcontext"
	paymentUC "github.com/bankgo/mspayment/usecase/payment"
)

type PaymentHandler struct {
	baseHandler
	uc *paymentUC.UseCase
}

func NewPaymentHandler(uc *paymentUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List payments
// @Tags payments
// @Router /api/payment [get]
func (h *PaymentHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	payments, err := h.uc.ListPayments(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondDone(ctx, payments)
}

// @Summary Get payment
// @Tags payments
// @Router /api/payment/{id} [get]
func (h *PaymentHandler) Get(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	pay, err := h.uc.GetPayment(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondDone(ctx, pay)
}

// @Summary Create payment
// @Tags payments
// @Router /api/payment/{type} [post]
func (h *PaymentHandler) Create(ctx *fasthttp.RequestCtx) {
	typeDiscriminator, _ := ctx.UserValue("type").(string)

	pay, ok := h.parsePayment(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.logger.Info("create payment",
		zap.String("type", typeDiscriminator),
		zap.String("active_id", pay.ActiveID),
		zap.String("client_id", pay.ClientID))

	created, err := h.uc.CreatePayment(stdCtx, typeDiscriminator, pay)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondDone(ctx, created)
}

// @Summary Update payment
// @Tags payments
// @Router /api/payment/{id} [put]
func (h *PaymentHandler) Update(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	pay, ok := h.parsePayment(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdatePayment(stdCtx, id, pay)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondDone(ctx, updated)
}

// @Summary Delete payment
// @Tags payments
// @Router /api/payment/{id} [delete]
func (h *PaymentHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeletePayment(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondDone(ctx, nil)
}

// @Summary List a client's payments
// @Tags payments
// @Router /api/payment/clientPayments/{idClient} [get]
func (h *PaymentHandler) ListByClient(ctx *fasthttp.RequestCtx) {
	idClient, _ := ctx.UserValue("idClient").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	payments, err := h.uc.ListByClient(stdCtx, idClient)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondDone(ctx, payments)
}

// @Summary Sum a client's payment amounts
// @Tags payments
// @Router /api/payment/balance/{idClient} [get]
func (h *PaymentHandler) Balance(ctx *fasthttp.RequestCtx) {
	idClient, _ := ctx.UserValue("idClient").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	total, err := h.uc.GetBalance(stdCtx, idClient)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondDone(ctx, total)
}

func (h *PaymentHandler) parsePayment(ctx *fasthttp.RequestCtx) (*domain.Payment, bool) {
	var req transport.PaymentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondEnvelope(ctx, transport.NewFailure(domain.ErrInvalidPayload.Message, fasthttp.StatusBadRequest))
		return nil, false
	}

	return &domain.Payment{
		ID:       req.ID,
		ActiveID: req.ActiveID,
		ClientID: req.ClientID,
		Amount:   req.Amount,
		TypeCode: domain.PaymentType(req.TypeCode),
	}, true
}
