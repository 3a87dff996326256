package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/bankgo/mspayment/domain"
	"github.com/bankgo/mspayment/internal/infrastructure/journal"
	"github.com/bankgo/mspayment/usecase"
)

// AuditRecorder bridges the orchestrator's audit port to the local journal.
type AuditRecorder struct {
	store  *journal.Store
	logger *zap.Logger
}

func NewAuditRecorder(store *journal.Store, logger *zap.Logger) *AuditRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditRecorder{store: store, logger: logger}
}

func (a *AuditRecorder) Record(ctx context.Context, operation string, pay *domain.Payment) error {
	if a == nil || a.store == nil || pay == nil {
		return domain.ErrInvalidPayload
	}

	payload, err := json.Marshal(pay)
	if err != nil {
		return err
	}

	return a.store.Append(journal.Entry{
		PaymentID: pay.ID,
		ClientID:  pay.ClientID,
		Operation: operation,
		Data:      payload,
	})
}

var _ usecase.AuditTrail = (*AuditRecorder)(nil)
