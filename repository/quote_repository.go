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

// QuoteRepository handles database operations for quotes
type QuoteRepository struct{}

// NewQuoteRepository creates a new QuoteRepository
func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

var _ QuoteRepositoryInterface = (*QuoteRepository)(nil)

const quoteColumns = `id, number, company_id, client_id, date::text, status, tax_rate, is_free, currency, validity_days, converted_order_id, COALESCE(notes, ''), created_at::text, updated_at::text`

func scanQuote(scanner interface{ Scan(...interface{}) error }) (*models.Quote, error) {
	var q models.Quote
	var convertedOrderID sql.NullInt64
	err := scanner.Scan(
		&q.ID,
		&q.Number,
		&q.CompanyID,
		&q.ClientID,
		&q.Date,
		&q.Status,
		&q.TaxRate,
		&q.IsFree,
		&q.Currency,
		&q.ValidityDays,
		&convertedOrderID,
		&q.Notes,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if convertedOrderID.Valid {
		q.ConvertedOrderID = &convertedOrderID.Int64
	}
	return &q, nil
}

// Create inserts a quote with its recalculated line items
func (r *QuoteRepository) Create(ctx context.Context, req *models.CreateQuoteRequest) (*models.QuoteResponse, error) {
	log.Printf("📦 Create: Creating quote for client id=%d with %d items", req.ClientID, len(req.Items))

	date, year, err := documentDate(req.Date)
	if err != nil {
		return nil, err
	}

	validityDays := req.ValidityDays
	if validityDays <= 0 {
		validityDays = 30
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

	number, err := nextDocumentNumber(ctx, tx, "quotes", utils.PrefixQuote, year)
	if err != nil {
		return nil, err
	}

	items := pricing.CalculateAllItemTotals(req.Items)

	query := `
		INSERT INTO quotes (number, company_id, client_id, date, status, tax_rate, is_free, currency, validity_days, notes)
		VALUES ($1, $2, $3, $4, 'draft', $5, $6, $7, $8, $9)
		RETURNING ` + quoteColumns

	quote, err := scanQuote(tx.QueryRowContext(ctx, query,
		number,
		req.CompanyID,
		req.ClientID,
		date,
		req.TaxRate,
		req.IsFree,
		defaultCurrency(req.Currency),
		validityDays,
		nullString(req.Notes),
	))
	if err != nil {
		log.Printf("❌ Create: Error inserting quote: %v", err)
		return nil, fmt.Errorf("failed to insert quote: %w", err)
	}

	if err := insertLineItems(ctx, tx, "quote_items", "quote_id", quote.ID, items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Create: Successfully created quote %s (id=%d)", quote.Number, quote.ID)
	return r.GetByID(ctx, quote.ID)
}

// GetByID retrieves a quote with its client, stored items and totals
func (r *QuoteRepository) GetByID(ctx context.Context, id int64) (*models.QuoteResponse, error) {
	quote, err := scanQuote(db.DB.QueryRowContext(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("quote not found")
		}
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}

	items, err := loadLineItems(ctx, db.DB, "quote_items", "quote_id", id)
	if err != nil {
		return nil, err
	}

	client, err := scanClient(db.DB.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, quote.ClientID))
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to fetch quote client: %w", err)
	}

	return &models.QuoteResponse{
		Quote:  *quote,
		Client: client,
		Items:  items,
		Totals: pricing.CalculateDocumentTotals(items, quote.TaxRate, quote.IsFree),
	}, nil
}

// List retrieves quotes with summary figures, optionally bounded by dates
func (r *QuoteRepository) List(ctx context.Context, from, to *string) ([]models.QuoteListItem, error) {
	query := `
		SELECT q.id, q.number, q.company_id, q.client_id, q.date::text, q.status, q.tax_rate, q.is_free, q.currency,
		       q.validity_days, q.converted_order_id, COALESCE(q.notes, ''), q.created_at::text, q.updated_at::text,
		       COALESCE(c.name, ''),
		       (SELECT COUNT(*) FROM quote_items qi WHERE qi.quote_id = q.id),
		       CASE WHEN q.is_free THEN 0 ELSE
		           (SELECT COALESCE(SUM(qi.total_price), 0) FROM quote_items qi WHERE qi.quote_id = q.id) * (1 + q.tax_rate / 100)
		       END
		FROM quotes q
		LEFT JOIN clients c ON c.id = q.client_id
		WHERE ($1::date IS NULL OR q.date >= $1::date)
		  AND ($2::date IS NULL OR q.date <= $2::date)
		ORDER BY q.date DESC, q.id DESC
	`

	rows, err := db.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]models.QuoteListItem, 0)
	for rows.Next() {
		var item models.QuoteListItem
		var convertedOrderID sql.NullInt64
		err := rows.Scan(
			&item.ID, &item.Number, &item.CompanyID, &item.ClientID, &item.Date, &item.Status,
			&item.TaxRate, &item.IsFree, &item.Currency, &item.ValidityDays, &convertedOrderID,
			&item.Notes, &item.CreatedAt, &item.UpdatedAt,
			&item.ClientName, &item.ItemCount, &item.TotalAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		if convertedOrderID.Valid {
			item.ConvertedOrderID = &convertedOrderID.Int64
		}
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotes: %w", err)
	}

	return quotes, nil
}

// Update replaces the quote header and its full item list, recalculating totals
func (r *QuoteRepository) Update(ctx context.Context, id int64, req *models.UpdateQuoteRequest) (*models.QuoteResponse, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentStatus string
	err = tx.QueryRowContext(ctx, `SELECT status FROM quotes WHERE id = $1 FOR UPDATE`, id).Scan(&currentStatus)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("quote not found")
		}
		return nil, fmt.Errorf("failed to lock quote: %w", err)
	}
	if currentStatus == "converted" {
		return nil, fmt.Errorf("quote already converted to an order")
	}

	if err := checkExists(ctx, tx, "clients", req.ClientID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = currentStatus
	}

	validityDays := req.ValidityDays
	if validityDays <= 0 {
		validityDays = 30
	}

	items := pricing.CalculateAllItemTotals(req.Items)

	query := `
		UPDATE quotes
		SET client_id = $1, date = COALESCE(NULLIF($2, '')::date, date), status = $3,
		    tax_rate = $4, is_free = $5, currency = $6, validity_days = $7, notes = $8, updated_at = NOW()
		WHERE id = $9
	`
	_, err = tx.ExecContext(ctx, query,
		req.ClientID, req.Date, status, req.TaxRate, req.IsFree,
		defaultCurrency(req.Currency), validityDays, nullString(req.Notes), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update quote: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM quote_items WHERE quote_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to clear quote items: %w", err)
	}
	if err := insertLineItems(ctx, tx, "quote_items", "quote_id", id, items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Update: Successfully updated quote id=%d", id)
	return r.GetByID(ctx, id)
}

// Delete removes a quote and its items
func (r *QuoteRepository) Delete(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("quote not found")
	}

	return nil
}

// ConvertToOrder creates an order from an accepted quote in one transaction.
// The quote keeps its frozen line prices; the new order carries copies of the
// rows and the quote is marked converted with a link to the order.
func (r *QuoteRepository) ConvertToOrder(ctx context.Context, id int64) (*models.OrderResponse, error) {
	log.Printf("💰 ConvertToOrder: Converting quote id=%d", id)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	quote, err := scanQuote(tx.QueryRowContext(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("quote not found")
		}
		return nil, fmt.Errorf("failed to lock quote: %w", err)
	}
	if quote.Status == "converted" {
		return nil, fmt.Errorf("quote already converted to an order")
	}

	items, err := loadLineItems(ctx, tx, "quote_items", "quote_id", id)
	if err != nil {
		return nil, err
	}

	date := time.Now().Format("2006-01-02")
	number, err := nextDocumentNumber(ctx, tx, "orders", utils.PrefixOrder, time.Now().Year())
	if err != nil {
		return nil, err
	}

	orderQuery := `
		INSERT INTO orders (number, company_id, client_id, date, status, tax_rate, is_free, currency, notes)
		VALUES ($1, $2, $3, $4, 'confirmed', $5, $6, $7, $8)
		RETURNING id
	`
	var orderID int64
	err = tx.QueryRowContext(ctx, orderQuery,
		number, quote.CompanyID, quote.ClientID, date,
		quote.TaxRate, quote.IsFree, quote.Currency,
		nullString(fmt.Sprintf("Converti du devis %s", quote.Number)),
	).Scan(&orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert converted order: %w", err)
	}

	if err := insertLineItems(ctx, tx, "order_items", "order_id", orderID, items); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE quotes SET status = 'converted', converted_order_id = $1, updated_at = NOW() WHERE id = $2`,
		orderID, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mark quote as converted: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ ConvertToOrder: Quote %s converted to order %s", quote.Number, number)
	orderRepo := NewOrderRepository()
	return orderRepo.GetByID(ctx, orderID)
}
