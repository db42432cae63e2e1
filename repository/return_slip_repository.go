package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"marbrerie-gestion/db"
	"marbrerie-gestion/models"
	"marbrerie-gestion/utils"
)

// ReturnSlipRepository handles database operations for return slips.
// Return rows carry no pricing, so there is no calculation step here.
type ReturnSlipRepository struct{}

// NewReturnSlipRepository creates a new ReturnSlipRepository
func NewReturnSlipRepository() *ReturnSlipRepository {
	return &ReturnSlipRepository{}
}

var _ ReturnSlipRepositoryInterface = (*ReturnSlipRepository)(nil)

const returnSlipColumns = `id, number, company_id, client_id, COALESCE(order_number, ''), date::text, status, COALESCE(reason, ''), COALESCE(notes, ''), created_at::text, updated_at::text`

func scanReturnSlip(scanner interface{ Scan(...interface{}) error }) (*models.ReturnSlip, error) {
	var s models.ReturnSlip
	err := scanner.Scan(
		&s.ID,
		&s.Number,
		&s.CompanyID,
		&s.ClientID,
		&s.OrderNumber,
		&s.Date,
		&s.Status,
		&s.Reason,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func insertReturnSlipItems(ctx context.Context, tx *sql.Tx, slipID int64, items []models.ReturnSlipItem) error {
	query := `
		INSERT INTO return_slip_items (slip_id, position, type, product, state, length, width, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for i, item := range items {
		_, err := tx.ExecContext(ctx, query,
			slipID,
			i+1,
			item.Type,
			nullString(item.Product),
			nullString(item.State),
			nullFloat(item.Length),
			nullFloat(item.Width),
			item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("failed to insert return slip item %d: %w", i+1, err)
		}
	}
	return nil
}

func loadReturnSlipItems(ctx context.Context, q queryer, slipID int64) ([]models.ReturnSlipItem, error) {
	query := `
		SELECT id, type, COALESCE(product, ''), COALESCE(state, ''), length, width, quantity
		FROM return_slip_items
		WHERE slip_id = $1
		ORDER BY position ASC
	`

	rows, err := q.QueryContext(ctx, query, slipID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch return slip items: %w", err)
	}
	defer rows.Close()

	items := make([]models.ReturnSlipItem, 0)
	for rows.Next() {
		var item models.ReturnSlipItem
		var length, width sql.NullFloat64
		err := rows.Scan(&item.ID, &item.Type, &item.Product, &item.State, &length, &width, &item.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to scan return slip item: %w", err)
		}
		item.Length = floatPtr(length)
		item.Width = floatPtr(width)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate return slip items: %w", err)
	}

	return items, nil
}

// Create inserts a return slip with its rows
func (r *ReturnSlipRepository) Create(ctx context.Context, req *models.CreateReturnSlipRequest) (*models.ReturnSlipResponse, error) {
	log.Printf("📥 Create: Creating return slip for client id=%d with %d items", req.ClientID, len(req.Items))

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

	number, err := nextDocumentNumber(ctx, tx, "return_slips", utils.PrefixReturnSlip, year)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO return_slips (number, company_id, client_id, order_number, date, status, reason, notes)
		VALUES ($1, $2, $3, $4, $5, 'draft', $6, $7)
		RETURNING ` + returnSlipColumns

	slip, err := scanReturnSlip(tx.QueryRowContext(ctx, query,
		number,
		req.CompanyID,
		req.ClientID,
		nullString(req.OrderNumber),
		date,
		nullString(req.Reason),
		nullString(req.Notes),
	))
	if err != nil {
		log.Printf("❌ Create: Error inserting return slip: %v", err)
		return nil, fmt.Errorf("failed to insert return slip: %w", err)
	}

	if err := insertReturnSlipItems(ctx, tx, slip.ID, req.Items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Create: Successfully created return slip %s (id=%d)", slip.Number, slip.ID)
	return r.GetByID(ctx, slip.ID)
}

// GetByID retrieves a return slip with its client and rows
func (r *ReturnSlipRepository) GetByID(ctx context.Context, id int64) (*models.ReturnSlipResponse, error) {
	slip, err := scanReturnSlip(db.DB.QueryRowContext(ctx, `SELECT `+returnSlipColumns+` FROM return_slips WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("return slip not found")
		}
		return nil, fmt.Errorf("failed to fetch return slip: %w", err)
	}

	items, err := loadReturnSlipItems(ctx, db.DB, id)
	if err != nil {
		return nil, err
	}

	client, err := scanClient(db.DB.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, slip.ClientID))
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to fetch slip client: %w", err)
	}

	return &models.ReturnSlipResponse{
		ReturnSlip: *slip,
		Client:     client,
		Items:      items,
	}, nil
}

// List retrieves return slips, optionally bounded by dates
func (r *ReturnSlipRepository) List(ctx context.Context, from, to *string) ([]models.ReturnSlipListItem, error) {
	query := `
		SELECT s.id, s.number, s.company_id, s.client_id, COALESCE(s.order_number, ''), s.date::text, s.status,
		       COALESCE(s.reason, ''), COALESCE(s.notes, ''), s.created_at::text, s.updated_at::text,
		       COALESCE(c.name, ''),
		       (SELECT COUNT(*) FROM return_slip_items si WHERE si.slip_id = s.id)
		FROM return_slips s
		LEFT JOIN clients c ON c.id = s.client_id
		WHERE ($1::date IS NULL OR s.date >= $1::date)
		  AND ($2::date IS NULL OR s.date <= $2::date)
		ORDER BY s.date DESC, s.id DESC
	`

	rows, err := db.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch return slips: %w", err)
	}
	defer rows.Close()

	slips := make([]models.ReturnSlipListItem, 0)
	for rows.Next() {
		var item models.ReturnSlipListItem
		err := rows.Scan(
			&item.ID, &item.Number, &item.CompanyID, &item.ClientID, &item.OrderNumber, &item.Date, &item.Status,
			&item.Reason, &item.Notes, &item.CreatedAt, &item.UpdatedAt,
			&item.ClientName, &item.ItemCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan return slip: %w", err)
		}
		slips = append(slips, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate return slips: %w", err)
	}

	return slips, nil
}

// Update replaces the slip header and its full item list
func (r *ReturnSlipRepository) Update(ctx context.Context, id int64, req *models.UpdateReturnSlipRequest) (*models.ReturnSlipResponse, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentStatus string
	err = tx.QueryRowContext(ctx, `SELECT status FROM return_slips WHERE id = $1 FOR UPDATE`, id).Scan(&currentStatus)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("return slip not found")
		}
		return nil, fmt.Errorf("failed to lock return slip: %w", err)
	}

	if err := checkExists(ctx, tx, "clients", req.ClientID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = currentStatus
	}

	query := `
		UPDATE return_slips
		SET client_id = $1, order_number = $2, date = COALESCE(NULLIF($3, '')::date, date), status = $4,
		    reason = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err = tx.ExecContext(ctx, query,
		req.ClientID, nullString(req.OrderNumber), req.Date, status,
		nullString(req.Reason), nullString(req.Notes), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update return slip: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM return_slip_items WHERE slip_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to clear slip items: %w", err)
	}
	if err := insertReturnSlipItems(ctx, tx, id, req.Items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Update: Successfully updated return slip id=%d", id)
	return r.GetByID(ctx, id)
}

// Delete removes a return slip and its items
func (r *ReturnSlipRepository) Delete(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM return_slips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete return slip: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete return slip: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("return slip not found")
	}

	return nil
}
