package usecase

import (
	"context"

	"github.com/bankgo/mspayment/domain"
)

// ActiveLookup abstracts the remote active (account) service. A nil Data in
// the result is the remote's way of saying the code did not resolve.
type ActiveLookup interface {
	FindByCode(ctx context.Context, code string) (*domain.ActiveLookupResult, error)
}

// ClientLookup abstracts the remote client (customer) service.
type ClientLookup interface {
	FindByCode(ctx context.Context, code string) (*domain.ClientLookupResult, error)
}
