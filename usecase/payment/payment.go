package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bankgo/mspayment/domain"
	"github.com/bankgo/mspayment/pkg/logger"
	"github.com/bankgo/mspayment/repository"
	"github.com/bankgo/mspayment/usecase"
)

// Mutation names recorded on the audit trail.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// UseCase orchestrates payment validation, persistence and aggregation.
type UseCase struct {
	payments repository.PaymentRepository
	actives  usecase.ActiveLookup
	clients  usecase.ClientLookup
	balances usecase.BalanceCache
	audit    usecase.AuditTrail
	logger   *zap.Logger
	now      func() time.Time
}

func New(
	payments repository.PaymentRepository,
	actives usecase.ActiveLookup,
	clients usecase.ClientLookup,
	balances usecase.BalanceCache,
	audit usecase.AuditTrail,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		payments: payments,
		actives:  actives,
		clients:  clients,
		balances: balances,
		audit:    audit,
		logger:   logger,
		now:      time.Now,
	}
}

// CreatePayment runs the cross-service validation chain and persists the
// record. The chain is strictly sequential: the client lookup only happens
// after the active resolved, and nothing is written before both checks pass.
func (uc *UseCase) CreatePayment(ctx context.Context, typeDiscriminator string, pay *domain.Payment) (*domain.Payment, error) {
	if pay == nil {
		return nil, domain.ErrInvalidPayload
	}

	typeName := domain.TypeFromDiscriminator(typeDiscriminator)
	log := logger.WithRequestID(ctx, uc.logger)

	activeRes, err := uc.actives.FindByCode(ctx, pay.ActiveID)
	if err != nil {
		log.Warn("active lookup failed", zap.String("active_id", pay.ActiveID), zap.Error(err))
		return nil, domain.ErrActiveNoContent
	}
	if activeRes == nil {
		return nil, domain.ErrActiveNoContent
	}
	if activeRes.Data == nil {
		return nil, domain.ErrNoActive
	}

	clientRes, err := uc.clients.FindByCode(ctx, pay.ClientID)
	if err != nil {
		log.Warn("client lookup failed", zap.String("client_id", pay.ClientID), zap.Error(err))
		return nil, domain.ErrClientNoContent
	}
	if clientRes == nil {
		return nil, domain.ErrClientNoContent
	}
	if clientRes.Data == nil {
		return nil, domain.ErrNoClient
	}

	if clientRes.Data.Type != typeName {
		return nil, domain.ErrTypeMismatch
	}

	pay.TypeCode = typeName
	pay.DateRegistered = uc.now()

	created, err := uc.payments.Create(ctx, pay)
	if err != nil {
		return nil, domain.DependencyError(err)
	}

	uc.afterMutation(ctx, OperationCreate, created)
	return created, nil
}

// UpdatePayment overwrites an existing record without re-running the
// active/client validation chain. Corrections are accepted as-is.
func (uc *UseCase) UpdatePayment(ctx context.Context, id string, pay *domain.Payment) (*domain.Payment, error) {
	if pay == nil {
		return nil, domain.ErrInvalidPayload
	}

	exists, err := uc.payments.Exists(ctx, id)
	if err != nil {
		return nil, domain.DependencyError(err)
	}
	if !exists {
		return nil, domain.ErrPaymentNotFound
	}

	pay.ID = id
	updatedAt := uc.now()
	pay.DateUpdated = &updatedAt

	if err := uc.payments.Update(ctx, pay); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, domain.DependencyError(err)
	}

	uc.afterMutation(ctx, OperationUpdate, pay)
	return pay, nil
}

func (uc *UseCase) DeletePayment(ctx context.Context, id string) error {
	existing, err := uc.payments.GetByID(ctx, id)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return domain.ErrPaymentNotFound
		}
		return domain.DependencyError(err)
	}

	if err := uc.payments.Delete(ctx, id); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return domain.ErrPaymentNotFound
		}
		return domain.DependencyError(err)
	}

	uc.afterMutation(ctx, OperationDelete, existing)
	return nil
}

func (uc *UseCase) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	pay, err := uc.payments.GetByID(ctx, id)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrNoContent
		}
		return nil, domain.DependencyError(err)
	}
	return pay, nil
}

func (uc *UseCase) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := uc.payments.List(ctx)
	if err != nil {
		return nil, domain.DependencyError(err)
	}
	if len(payments) == 0 {
		return nil, domain.ErrNoContent
	}
	return payments, nil
}

// ListByClient filters the full record stream by client, preserving the
// store's iteration order.
func (uc *UseCase) ListByClient(ctx context.Context, clientID string) ([]domain.Payment, error) {
	payments, err := uc.payments.List(ctx)
	if err != nil {
		return nil, domain.DependencyError(err)
	}

	matched := make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		if p.ClientID == clientID {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return nil, domain.ErrNoContent
	}
	return matched, nil
}

// GetBalance folds the amounts of a client's payments into a single total.
// The fold runs over a materialized snapshot in one goroutine, accumulating
// exactly in decimal space; no records means a total of 0, not an error.
func (uc *UseCase) GetBalance(ctx context.Context, clientID string) (float64, error) {
	if uc.balances != nil {
		if total, ok, err := uc.balances.Get(ctx, clientID); err == nil && ok {
			return total, nil
		} else if err != nil {
			uc.logger.Warn("balance cache read failed", zap.String("client_id", clientID), zap.Error(err))
		}
	}

	payments, err := uc.payments.List(ctx)
	if err != nil {
		return 0, domain.DependencyError(err)
	}

	sum := decimal.Zero
	for _, p := range payments {
		if p.ClientID == clientID {
			sum = sum.Add(decimal.NewFromFloat(p.Amount))
		}
	}
	total := sum.InexactFloat64()

	if uc.balances != nil {
		if err := uc.balances.Set(ctx, clientID, total); err != nil {
			uc.logger.Warn("balance cache write failed", zap.String("client_id", clientID), zap.Error(err))
		}
	}
	return total, nil
}

// afterMutation invalidates the client's cached balance and records the
// mutation on the audit trail. Neither failure affects the caller.
func (uc *UseCase) afterMutation(ctx context.Context, operation string, pay *domain.Payment) {
	if pay == nil {
		return
	}
	if uc.balances != nil {
		if err := uc.balances.Invalidate(ctx, pay.ClientID); err != nil {
			uc.logger.Warn("balance cache invalidation failed",
				zap.String("client_id", pay.ClientID), zap.Error(err))
		}
	}
	if uc.audit != nil {
		if err := uc.audit.Record(ctx, operation, pay); err != nil {
			uc.logger.Warn("audit record failed",
				zap.String("operation", operation), zap.String("payment_id", pay.ID), zap.Error(err))
		}
	}
}
