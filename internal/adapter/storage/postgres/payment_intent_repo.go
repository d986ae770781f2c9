package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ricartefelipe/payments-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentIntentColumns = `id, tenant_id, amount, currency, status, customer_ref, gateway_ref, created_at, updated_at`

// PaymentIntentRepo implements ports.PaymentIntentRepository.
type PaymentIntentRepo struct {
	pool Pool
}

// NewPaymentIntentRepo creates a new PaymentIntentRepo.
func NewPaymentIntentRepo(pool Pool) *PaymentIntentRepo {
	return &PaymentIntentRepo{pool: pool}
}

// Create inserts a new payment intent within a database transaction.
func (r *PaymentIntentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.PaymentIntent) error {
	query := `INSERT INTO payment_intents (` + paymentIntentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := tx.Exec(ctx, query,
		p.ID, p.TenantID, p.Amount, p.Currency, p.Status, p.CustomerRef, p.GatewayRef, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment intent: %w", err)
	}
	return nil
}

// GetByID fetches an intent without locking.
func (r *PaymentIntentRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.PaymentIntent, error) {
	query := `SELECT ` + paymentIntentColumns + ` FROM payment_intents WHERE tenant_id = $1 AND id = $2`
	return r.scan(r.pool.QueryRow(ctx, query, tenantID, id))
}

// GetByIDForUpdate fetches an intent with a row-level lock. Must run inside
// an open transaction.
func (r *PaymentIntentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, id uuid.UUID) (*domain.PaymentIntent, error) {
	query := `SELECT ` + paymentIntentColumns + ` FROM payment_intents WHERE tenant_id = $1 AND id = $2 FOR UPDATE`
	return r.scan(tx.QueryRow(ctx, query, tenantID, id))
}

// GetByCustomerRef fetches an intent by its dedupe key.
func (r *PaymentIntentRepo) GetByCustomerRef(ctx context.Context, tenantID uuid.UUID, customerRef string) (*domain.PaymentIntent, error) {
	query := `SELECT ` + paymentIntentColumns + ` FROM payment_intents WHERE tenant_id = $1 AND customer_ref = $2`
	return r.scan(r.pool.QueryRow(ctx, query, tenantID, customerRef))
}

// GetByGatewayRef fetches an intent by its external gateway reference.
func (r *PaymentIntentRepo) GetByGatewayRef(ctx context.Context, tenantID uuid.UUID, gatewayRef string) (*domain.PaymentIntent, error) {
	query := `SELECT ` + paymentIntentColumns + ` FROM payment_intents WHERE tenant_id = $1 AND gateway_ref = $2`
	return r.scan(r.pool.QueryRow(ctx, query, tenantID, gatewayRef))
}

// Update persists status/gateway_ref/updated_at changes within a database
// transaction.
func (r *PaymentIntentRepo) Update(ctx context.Context, tx pgx.Tx, p *domain.PaymentIntent) error {
	query := `UPDATE payment_intents SET status = $1, gateway_ref = $2, updated_at = $3 WHERE tenant_id = $4 AND id = $5`
	tag, err := tx.Exec(ctx, query, p.Status, p.GatewayRef, p.UpdatedAt, p.TenantID, p.ID)
	if err != nil {
		return fmt.Errorf("update payment intent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment intent not found: %s", p.ID)
	}
	return nil
}

// ListWithGatewayRef returns every intent in the tenant that carries a
// gateway_ref, for use by the reconciliation engine's MISSING_REMOTE pass.
func (r *PaymentIntentRepo) ListWithGatewayRef(ctx context.Context, tenantID uuid.UUID) ([]domain.PaymentIntent, error) {
	query := `SELECT ` + paymentIntentColumns + ` FROM payment_intents WHERE tenant_id = $1 AND gateway_ref IS NOT NULL`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list payment intents with gateway ref: %w", err)
	}
	defer rows.Close()

	var out []domain.PaymentIntent
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PaymentIntentRepo) scan(row pgx.Row) (*domain.PaymentIntent, error) {
	p := &domain.PaymentIntent{}
	err := row.Scan(&p.ID, &p.TenantID, &p.Amount, &p.Currency, &p.Status, &p.CustomerRef, &p.GatewayRef, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment intent: %w", err)
	}
	return p, nil
}

func (r *PaymentIntentRepo) scanRow(rows pgx.Rows) (*domain.PaymentIntent, error) {
	p := &domain.PaymentIntent{}
	err := rows.Scan(&p.ID, &p.TenantID, &p.Amount, &p.Currency, &p.Status, &p.CustomerRef, &p.GatewayRef, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan payment intent row: %w", err)
	}
	return p, nil
}
