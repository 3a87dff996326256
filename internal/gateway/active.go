package gateway

import (
	"context"
	"encoding/json"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/bankgo/mspayment/domain"
	"github.com/bankgo/mspayment/usecase"
)

// ActiveGateway resolves active (account) codes against the remote active
// management service.
type ActiveGateway struct {
	client *fasthttp.Client
	cfg    Config
	logger *zap.Logger
}

func NewActiveGateway(cfg Config, logger *zap.Logger) *ActiveGateway {
	cfg.normalize()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActiveGateway{
		client: newHTTPClient(cfg.Timeout),
		cfg:    cfg,
		logger: logger,
	}
}

func (g *ActiveGateway) FindByCode(ctx context.Context, code string) (*domain.ActiveLookupResult, error) {
	body, err := fetch(g.client, g.cfg, "/api/active/"+code, ctx.Done(), g.logger)
	if err != nil {
		return nil, err
	}

	var result domain.ActiveLookupResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

var _ usecase.ActiveLookup = (*ActiveGateway)(nil)
