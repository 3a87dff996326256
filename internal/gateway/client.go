package gateway

import (
	"context"
	"encoding/json"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/bankgo/mspayment/domain"
	"github.com/bankgo/mspayment/usecase"
)

// ClientGateway resolves client (customer) codes against the remote client
// management service. Besides existence the response carries the client's
// PERSONAL/COMPANY classification used by the creation chain.
type ClientGateway struct {
	client *fasthttp.Client
	cfg    Config
	logger *zap.Logger
}

func NewClientGateway(cfg Config, logger *zap.Logger) *ClientGateway {
	cfg.normalize()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientGateway{
		client: newHTTPClient(cfg.Timeout),
		cfg:    cfg,
		logger: logger,
	}
}

func (g *ClientGateway) FindByCode(ctx context.Context, code string) (*domain.ClientLookupResult, error) {
	body, err := fetch(g.client, g.cfg, "/api/client/"+code, ctx.Done(), g.logger)
	if err != nil {
		return nil, err
	}

	var result domain.ClientLookupResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

var _ usecase.ClientLookup = (*ClientGateway)(nil)
