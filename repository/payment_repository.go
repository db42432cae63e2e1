package repository

import (
	"context"
	"fmt"
	"log"

	"marbrerie-gestion/db"
	"marbrerie-gestion/models"
)

// PaymentRepository handles database operations for order payments
type PaymentRepository struct{}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

var _ PaymentRepositoryInterface = (*PaymentRepository)(nil)

const paymentColumns = `id, order_id, amount, method, COALESCE(destination, ''), paid_at::text, COALESCE(notes, ''), created_at::text`

func scanPayment(scanner interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	var p models.Payment
	err := scanner.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.Destination, &p.PaidAt, &p.Notes, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create records a payment against an order
func (r *PaymentRepository) Create(ctx context.Context, orderID int64, req *models.CreatePaymentRequest) (*models.Payment, error) {
	log.Printf("💰 Create: Recording payment of %.2f on order id=%d", req.Amount, orderID)

	if req.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkExists(ctx, tx, "orders", orderID); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO payments (order_id, amount, method, destination, paid_at, notes)
		VALUES ($1, $2, $3, $4, COALESCE(NULLIF($5, '')::timestamptz, NOW()), $6)
		RETURNING ` + paymentColumns

	payment, err := scanPayment(tx.QueryRowContext(ctx, query,
		orderID,
		req.Amount,
		req.Method,
		nullString(req.Destination),
		req.PaidAt,
		nullString(req.Notes),
	))
	if err != nil {
		log.Printf("❌ Create: Error inserting payment: %v", err)
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Create: Payment id=%d recorded on order id=%d", payment.ID, orderID)
	return payment, nil
}

// ListByOrder retrieves an order's payments with the running total
func (r *PaymentRepository) ListByOrder(ctx context.Context, orderID int64) (*models.PaymentListResponse, error) {
	rows, err := db.DB.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = $1 ORDER BY paid_at ASC, id ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	defer rows.Close()

	resp := &models.PaymentListResponse{Payments: make([]models.Payment, 0)}
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		resp.Payments = append(resp.Payments, *payment)
		resp.TotalPaid += payment.Amount
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return resp, nil
}
