package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/bankgo/mspayment/api/transport"
	"github.com/bankgo/mspayment/internal/infrastructure/monitor"
	"github.com/bankgo/mspayment/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"services": map[string]interface{}{
			"postgresql":     status.PostgreSQL,
			"redis":          status.Redis,
			"active_service": status.ActiveService,
			"client_service": status.ClientService,
			"journal": map[string]interface{}{
				"online": status.Journal,
				"size":   status.JournalSize,
			},
		},
	}

	if status.PostgreSQL {
		h.respondDone(ctx, payload)
		return
	}
	h.respondEnvelope(ctx, transport.Envelope{
		Message: "dependencies unhealthy",
		Status:  http.StatusServiceUnavailable,
		Data:    payload,
	})
}
