package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bankgo/mspayment/domain"
	"github.com/bankgo/mspayment/repository"
)

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation of PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) repository.PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM payments WHERE id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	const query = `
	SELECT id, active_id, client_id, amount, type_code, date_registered, date_updated
	FROM payments
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanPayment(row)
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	const query = `
	SELECT id, active_id, client_id, amount, type_code, date_registered, date_updated
	FROM payments
	ORDER BY date_registered
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment == nil {
		return nil, domain.ErrInvalidPayload
	}
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO payments (id, active_id, client_id, amount, type_code, date_registered)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING date_registered
	`

	if err := r.pool.QueryRow(ctx, query,
		payment.ID,
		payment.ActiveID,
		payment.ClientID,
		payment.Amount,
		string(payment.TypeCode),
		payment.DateRegistered,
	).Scan(&payment.DateRegistered); err != nil {
		return nil, err
	}

	return payment, nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	if payment == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE payments
	SET active_id = $2,
		client_id = $3,
		amount = $4,
		type_code = $5,
		date_updated = $6
	WHERE id = $1
	RETURNING date_updated
	`

	var updated interface{}
	if payment.DateUpdated != nil {
		updated = *payment.DateUpdated
	}

	var stamped *time.Time
	if err := r.pool.QueryRow(ctx, query,
		payment.ID,
		payment.ActiveID,
		payment.ClientID,
		payment.Amount,
		string(payment.TypeCode),
		updated,
	).Scan(&stamped); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPaymentNotFound
		}
		return err
	}
	payment.DateUpdated = stamped

	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM payments WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func scanPayment(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Payment, error) {
	var payment domain.Payment
	var (
		typeCode string
		updated  *time.Time
	)

	if err := row.Scan(
		&payment.ID,
		&payment.ActiveID,
		&payment.ClientID,
		&payment.Amount,
		&typeCode,
		&payment.DateRegistered,
		&updated,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	payment.TypeCode = domain.PaymentType(typeCode)
	payment.DateUpdated = updated

	return &payment, nil
}
