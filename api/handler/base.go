package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/bankgo/mspayment/api/transport"
	"github.com/bankgo/mspayment/domain"
	"github.com/bankgo/mspayment/pkg/httpcontext"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

// respondEnvelope writes the envelope, mirroring its status on the HTTP layer.
func (h baseHandler) respondEnvelope(ctx *fasthttp.RequestCtx, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(payload.Status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondDone(ctx *fasthttp.RequestCtx, data interface{}) {
	h.respondEnvelope(ctx, transport.NewDone(data))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status := mapError(err)
	h.respondEnvelope(ctx, transport.NewFailure(errorMessage(err), status))
}

// mapError follows the contract: absent entities on update/delete are 404,
// every other failure (validation, empty results, dependency errors) is 400.
func mapError(err error) int {
	if domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func errorMessage(err error) string {
	var dErr *domain.Error
	if errors.As(err, &dErr) {
		return dErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
