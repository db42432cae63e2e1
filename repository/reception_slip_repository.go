package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"marbrerie-gestion/db"
	"marbrerie-gestion/models"
	"marbrerie-gestion/pricing"
	"marbrerie-gestion/utils"
)

// ReceptionSlipRepository handles database operations for reception slips.
// Slip rows use the grouped calculation: rows sharing a group number are
// aggregated onto the group's first row, and the result is only refreshed on
// save or on the explicit recalculate command.
type ReceptionSlipRepository struct{}

// NewReceptionSlipRepository creates a new ReceptionSlipRepository
func NewReceptionSlipRepository() *ReceptionSlipRepository {
	return &ReceptionSlipRepository{}
}

var _ ReceptionSlipRepositoryInterface = (*ReceptionSlipRepository)(nil)

const receptionSlipColumns = `id, number, company_id, client_id, date::text, status, tax_rate, is_free, currency, COALESCE(driver, ''), COALESCE(vehicle, ''), COALESCE(notes, ''), created_at::text, updated_at::text`

func scanReceptionSlip(scanner interface{ Scan(...interface{}) error }) (*models.ReceptionSlip, error) {
	var s models.ReceptionSlip
	err := scanner.Scan(
		&s.ID,
		&s.Number,
		&s.CompanyID,
		&s.ClientID,
		&s.Date,
		&s.Status,
		&s.TaxRate,
		&s.IsFree,
		&s.Currency,
		&s.Driver,
		&s.Vehicle,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a reception slip with its group-aggregated line items
func (r *ReceptionSlipRepository) Create(ctx context.Context, req *models.CreateReceptionSlipRequest) (*models.ReceptionSlipResponse, error) {
	log.Printf("📥 Create: Creating reception slip for client id=%d with %d items", req.ClientID, len(req.Items))

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

	number, err := nextDocumentNumber(ctx, tx, "reception_slips", utils.PrefixReceptionSlip, year)
	if err != nil {
		return nil, err
	}

	items := pricing.CalculateGroupedTotals(req.Items)

	query := `
		INSERT INTO reception_slips (number, company_id, client_id, date, status, tax_rate, is_free, currency, driver, vehicle, notes)
		VALUES ($1, $2, $3, $4, 'draft', $5, $6, $7, $8, $9, $10)
		RETURNING ` + receptionSlipColumns

	slip, err := scanReceptionSlip(tx.QueryRowContext(ctx, query,
		number,
		req.CompanyID,
		req.ClientID,
		date,
		req.TaxRate,
		req.IsFree,
		defaultCurrency(req.Currency),
		nullString(req.Driver),
		nullString(req.Vehicle),
		nullString(req.Notes),
	))
	if err != nil {
		log.Printf("❌ Create: Error inserting reception slip: %v", err)
		return nil, fmt.Errorf("failed to insert reception slip: %w", err)
	}

	if err := insertLineItems(ctx, tx, "reception_slip_items", "slip_id", slip.ID, items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Create: Successfully created reception slip %s (id=%d)", slip.Number, slip.ID)
	return r.GetByID(ctx, slip.ID)
}

// GetByID retrieves a reception slip with its client, stored items and totals
func (r *ReceptionSlipRepository) GetByID(ctx context.Context, id int64) (*models.ReceptionSlipResponse, error) {
	slip, err := scanReceptionSlip(db.DB.QueryRowContext(ctx, `SELECT `+receptionSlipColumns+` FROM reception_slips WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reception slip not found")
		}
		return nil, fmt.Errorf("failed to fetch reception slip: %w", err)
	}

	items, err := loadLineItems(ctx, db.DB, "reception_slip_items", "slip_id", id)
	if err != nil {
		return nil, err
	}

	client, err := scanClient(db.DB.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, slip.ClientID))
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to fetch slip client: %w", err)
	}

	return &models.ReceptionSlipResponse{
		ReceptionSlip: *slip,
		Client:        client,
		Items:         items,
		Totals:        pricing.CalculateDocumentTotals(items, slip.TaxRate, slip.IsFree),
	}, nil
}

// List retrieves reception slips with summary figures, optionally bounded by dates
func (r *ReceptionSlipRepository) List(ctx context.Context, from, to *string) ([]models.ReceptionSlipListItem, error) {
	query := `
		SELECT s.id, s.number, s.company_id, s.client_id, s.date::text, s.status, s.tax_rate, s.is_free, s.currency,
		       COALESCE(s.driver, ''), COALESCE(s.vehicle, ''), COALESCE(s.notes, ''), s.created_at::text, s.updated_at::text,
		       COALESCE(c.name, ''),
		       (SELECT COUNT(*) FROM reception_slip_items si WHERE si.slip_id = s.id),
		       CASE WHEN s.is_free THEN 0 ELSE
		           (SELECT COALESCE(SUM(si.total_price), 0) FROM reception_slip_items si WHERE si.slip_id = s.id) * (1 + s.tax_rate / 100)
		       END
		FROM reception_slips s
		LEFT JOIN clients c ON c.id = s.client_id
		WHERE ($1::date IS NULL OR s.date >= $1::date)
		  AND ($2::date IS NULL OR s.date <= $2::date)
		ORDER BY s.date DESC, s.id DESC
	`

	rows, err := db.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reception slips: %w", err)
	}
	defer rows.Close()

	slips := make([]models.ReceptionSlipListItem, 0)
	for rows.Next() {
		var item models.ReceptionSlipListItem
		err := rows.Scan(
			&item.ID, &item.Number, &item.CompanyID, &item.ClientID, &item.Date, &item.Status,
			&item.TaxRate, &item.IsFree, &item.Currency, &item.Driver, &item.Vehicle,
			&item.Notes, &item.CreatedAt, &item.UpdatedAt,
			&item.ClientName, &item.ItemCount, &item.TotalAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reception slip: %w", err)
		}
		slips = append(slips, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reception slips: %w", err)
	}

	return slips, nil
}

// Update replaces the slip header and its full item list, re-running the
// grouped calculation on the submitted rows
func (r *ReceptionSlipRepository) Update(ctx context.Context, id int64, req *models.UpdateReceptionSlipRequest) (*models.ReceptionSlipResponse, error) {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentStatus string
	err = tx.QueryRowContext(ctx, `SELECT status FROM reception_slips WHERE id = $1 FOR UPDATE`, id).Scan(&currentStatus)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reception slip not found")
		}
		return nil, fmt.Errorf("failed to lock reception slip: %w", err)
	}

	if err := checkExists(ctx, tx, "clients", req.ClientID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = currentStatus
	}

	items := pricing.CalculateGroupedTotals(req.Items)

	query := `
		UPDATE reception_slips
		SET client_id = $1, date = COALESCE(NULLIF($2, '')::date, date), status = $3,
		    tax_rate = $4, is_free = $5, currency = $6, driver = $7, vehicle = $8, notes = $9, updated_at = NOW()
		WHERE id = $10
	`
	_, err = tx.ExecContext(ctx, query,
		req.ClientID, req.Date, status, req.TaxRate, req.IsFree,
		defaultCurrency(req.Currency), nullString(req.Driver), nullString(req.Vehicle), nullString(req.Notes), id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update reception slip: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM reception_slip_items WHERE slip_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to clear slip items: %w", err)
	}
	if err := insertLineItems(ctx, tx, "reception_slip_items", "slip_id", id, items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Update: Successfully updated reception slip id=%d", id)
	return r.GetByID(ctx, id)
}

// Delete removes a reception slip and its items
func (r *ReceptionSlipRepository) Delete(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM reception_slips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reception slip: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete reception slip: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("reception slip not found")
	}

	return nil
}

// Recalculate re-runs the grouped calculation on the stored rows and persists
// the refreshed derived values. This is the explicit calculate command used
// when rows were edited without resubmitting the whole slip.
func (r *ReceptionSlipRepository) Recalculate(ctx context.Context, id int64) (*models.ReceptionSlipResponse, error) {
	log.Printf("💰 Recalculate: Recalculating reception slip id=%d", id)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var lockedID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM reception_slips WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reception slip not found")
		}
		return nil, fmt.Errorf("failed to lock reception slip: %w", err)
	}

	items, err := loadLineItems(ctx, tx, "reception_slip_items", "slip_id", id)
	if err != nil {
		return nil, err
	}

	items = pricing.CalculateGroupedTotals(items)

	if _, err := tx.ExecContext(ctx, `DELETE FROM reception_slip_items WHERE slip_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to clear slip items: %w", err)
	}
	if err := insertLineItems(ctx, tx, "reception_slip_items", "slip_id", id, items); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE reception_slips SET updated_at = NOW() WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to touch reception slip: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Recalculate: Reception slip id=%d recalculated (%d rows)", id, len(items))
	return r.GetByID(ctx, id)
}
