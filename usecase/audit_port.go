package usecase

import (
	"context"

	"github.com/bankgo/mspayment/domain"
)

// AuditTrail records successful mutations so use cases stay storage-agnostic.
// Recording is best effort; failures never abort the mutation itself.
type AuditTrail interface {
	Record(ctx context.Context, operation string, payment *domain.Payment) error
}
