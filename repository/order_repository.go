package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"marbrerie-gestion/db"
	"marbrerie-gestion/models"
	"marbrerie-gestion/pricing"
	"marbrerie-gestion/utils"
)

// OrderRepository handles database operations for orders.
// Line totals are recomputed server-side inside the saving transaction, so
// whatever derived values the client submitted are discarded. Stored totals
// are frozen: reloading a document never reprices it.
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

var _ OrderRepositoryInterface = (*OrderRepository)(nil)

const orderColumns = `id, number, company_id, client_id, date::text, status, tax_rate, is_free, currency, COALESCE(notes, ''), created_at::text, updated_at::text`

func scanOrder(scanner interface{ Scan(...interface{}) error }) (*models.Order, error) {
	var o models.Order
	err := scanner.Scan(
		&o.ID,
		&o.Number,
		&o.CompanyID,
		&o.ClientID,
		&o.Date,
		&o.Status,
		&o.TaxRate,
		&o.IsFree,
		&o.Currency,
		&o.Notes,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// checkExists verifies a referenced row exists inside the transaction
func checkExists(ctx context.Context, tx *sql.Tx, table string, id int64) error {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`, table)
	if err := tx.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check %s: %w", table, err)
	}
	if !exists {
		return fmt.Errorf("%s not found", table[:len(table)-1])
	}
	return nil
}

// documentDate returns the request date or today, and its year for numbering
func documentDate(raw string) (string, int, error) {
	if raw == "" {
		now := time.Now()
		return now.Format("2006-01-02"), now.Year(), nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return "", 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return raw, parsed.Year(), nil
}

func defaultCurrency(c string) string {
	if c == "" {
		return "DHs"
	}
	return c
}

// Create inserts an order with its recalculated line items
func (r *OrderRepository) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderResponse, error) {
	log.Printf("📦 Create: Creating order for client id=%d with %d items", req.ClientID, len(req.Items))

	date, year, err := documentDate(req.Date)
	if err != nil {
		return nil, err
	}

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := checkExists(ctx, tx, "companies", req.CompanyID); err != nil {
		return nil, err
	}
	if err := checkExists(ctx, tx, "clients", req.ClientID); err != nil {
		return nil, err
	}

	number, err := nextDocumentNumber(ctx, tx, "orders", utils.PrefixOrder, year)
	if err != nil {
		return nil, err
	}

	items := pricing.CalculateAllItemTotals(req.Items)
	totals := pricing.CalculateDocumentTotals(items, req.TaxRate, req.IsFree)

	query := `
		INSERT INTO orders (number, company_id, client_id, date, status, tax_rate, is_free, currency, notes)
		VALUES ($1, $2, $3, $4, 'draft', $5, $6, $7, $8)
		RETURNING ` + orderColumns

	order, err := scanOrder(tx.QueryRowContext(ctx, query,
		number,
		req.CompanyID,
		req.ClientID,
		date,
		req.TaxRate,
		req.IsFree,
		defaultCurrency(req.Currency),
		nullString(req.Notes),
	))
	if err != nil {
		log.Printf("❌ Create: Error inserting order: %v", err)
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	if err := insertLineItems(ctx, tx, "order_items", "order_id", order.ID, items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Create: Successfully created order %s (id=%d) total=%.2f", order.Number, order.ID, totals.TotalAmount)
	return r.GetByID(ctx, order.ID)
}

// GetByID retrieves an order with its client, stored items and totals.
// Totals are derived from the frozen line totals, not recalculated from
// dimensions, so past documents keep the amounts they were saved with.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.OrderResponse, error) {
	order, err := scanOrder(db.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	items, err := loadLineItems(ctx, db.DB, "order_items", "order_id", id)
	if err != nil {
		return nil, err
	}

	client, err := scanClient(db.DB.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, order.ClientID))
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to fetch order client: %w", err)
	}

	return &models.OrderResponse{
		Order:  *order,
		Client: client,
		Items:  items,
		Totals: pricing.CalculateDocumentTotals(items, order.TaxRate, order.IsFree),
	}, nil
}

// List retrieves orders with summary figures, optionally bounded by dates
func (r *OrderRepository) List(ctx context.Context, from, to *string) ([]models.OrderListItem, error) {
	query := `
		SELECT o.id, o.number, o.company_id, o.client_id, o.date::text, o.status, o.tax_rate, o.is_free, o.currency,
		       COALESCE(o.notes, ''), o.created_at::text, o.updated_at::text,
		       COALESCE(c.name, ''),
		       (SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id),
		       CASE WHEN o.is_free THEN 0 ELSE
		           (SELECT COALESCE(SUM(oi.total_price), 0) FROM order_items oi WHERE oi.order_id = o.id) * (1 + o.tax_rate / 100)
		       END,
		       (SELECT COALESCE(SUM(p.amount), 0) FROM payments p WHERE p.order_id = o.id)
		FROM orders o
		LEFT JOIN clients c ON c.id = o.client_id
		WHERE ($1::date IS NULL OR o.date >= $1::date)
		  AND ($2::date IS NULL OR o.date <= $2::date)
		ORDER BY o.date DESC, o.id DESC
	`

	rows, err := db.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.OrderListItem, 0)
	for rows.Next() {
		var item models.OrderListItem
		err := rows.Scan(
			&item.ID, &item.Number, &item.CompanyID, &item.ClientID, &item.Date, &item.Status,
			&item.TaxRate, &item.IsFree, &item.Currency, &item.Notes, &item.CreatedAt, &item.UpdatedAt,
			&item.ClientName, &item.ItemCount, &item.TotalAmount, &item.AmountPaid,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

// Update replaces the order header and its full item list, recalculating totals
func (r *OrderRepository) Update(ctx context.Context, id int64, req *models.UpdateOrderRequest) (*models.OrderResponse, error) {
	log.Printf("📦 Update: Updating order id=%d with %d items", id, len(req.Items))

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentStatus string
	err = tx.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&currentStatus)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to lock order: %w", err)
	}

	if err := checkExists(ctx, tx, "clients", req.ClientID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = currentStatus
	}

	items := pricing.CalculateAllItemTotals(req.Items)

	query := `
		UPDATE orders
		SET client_id = $1, date = COALESCE(NULLIF($2, '')::date, date), status = $3,
		    tax_rate = $4, is_free = $5, currency = $6, notes = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err = tx.ExecContext(ctx, query,
		req.ClientID, req.Date, status, req.TaxRate, req.IsFree,
		defaultCurrency(req.Currency), nullString(req.Notes), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to clear order items: %w", err)
	}
	if err := insertLineItems(ctx, tx, "order_items", "order_id", id, items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Update: Successfully updated order id=%d", id)
	return r.GetByID(ctx, id)
}

// Delete removes an order and its items
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("order not found")
	}

	log.Printf("✅ Delete: Successfully deleted order id=%d", id)
	return nil
}
