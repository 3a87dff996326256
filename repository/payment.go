package repository

import (
	"context"

	"github.com/bankgo/mspayment/domain"
)

// PaymentRepository is the async record store holding payment transactions.
type PaymentRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id string) error
}
