package repository

import (
	"context"
	"database/sql"
	"fmt"

	"marbrerie-gestion/models"
	"marbrerie-gestion/utils"
)

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// insertLineItems writes a document's rows inside the caller's transaction.
// table is the item table, fkCol the document foreign-key column. Rows are
// stored with their 1-based position so the original order survives.
func insertLineItems(ctx context.Context, tx *sql.Tx, table, fkCol string, docID int64, items []models.LineItem) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, position, grp, type, product, options, state, splicer, length, width, quantity, unit_price, unit, total_quantity, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, table, fkCol)

	for i, item := range items {
		var grp sql.NullInt64
		if item.Group > 0 {
			grp = sql.NullInt64{Int64: int64(item.Group), Valid: true}
		}

		_, err := tx.ExecContext(ctx, query,
			docID,
			i+1,
			grp,
			item.Type,
			nullString(item.Product),
			nullString(item.Options),
			nullString(item.State),
			nullFloat(item.Splicer),
			nullFloat(item.Length),
			nullFloat(item.Width),
			item.Quantity,
			nullFloat(item.UnitPrice),
			nullString(item.Unit),
			nullFloat(item.TotalQuantity),
			nullFloat(item.TotalPrice),
		)
		if err != nil {
			return fmt.Errorf("failed to insert line item %d: %w", i+1, err)
		}
	}

	return nil
}

// loadLineItems reads a document's rows in stored position order.
func loadLineItems(ctx context.Context, q queryer, table, fkCol string, docID int64) ([]models.LineItem, error) {
	query := fmt.Sprintf(`
		SELECT id, grp, type, COALESCE(product, ''), COALESCE(options, ''), COALESCE(state, ''),
		       splicer, length, width, quantity, unit_price, COALESCE(unit, ''), total_quantity, total_price
		FROM %s
		WHERE %s = $1
		ORDER BY position ASC
	`, table, fkCol)

	rows, err := q.QueryContext(ctx, query, docID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch line items: %w", err)
	}
	defer rows.Close()

	items := make([]models.LineItem, 0)
	for rows.Next() {
		var item models.LineItem
		var grp sql.NullInt64
		var splicer, length, width, unitPrice, totalQuantity, totalPrice sql.NullFloat64

		err := rows.Scan(
			&item.ID,
			&grp,
			&item.Type,
			&item.Product,
			&item.Options,
			&item.State,
			&splicer,
			&length,
			&width,
			&item.Quantity,
			&unitPrice,
			&item.Unit,
			&totalQuantity,
			&totalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}

		if grp.Valid {
			item.Group = int(grp.Int64)
		}
		item.Splicer = floatPtr(splicer)
		item.Length = floatPtr(length)
		item.Width = floatPtr(width)
		item.UnitPrice = floatPtr(unitPrice)
		item.TotalQuantity = floatPtr(totalQuantity)
		item.TotalPrice = floatPtr(totalPrice)

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}

	return items, nil
}

// nextDocumentNumber allocates the next reference for a document table
// within the current year, e.g. "CMD-2026-0013". Must run inside the
// creating transaction so concurrent saves can't reuse a sequence.
func nextDocumentNumber(ctx context.Context, tx *sql.Tx, table, prefix string, year int) (string, error) {
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE number LIKE $1`, table)
	if err := tx.QueryRowContext(ctx, query, fmt.Sprintf("%s-%d-%%", prefix, year)).Scan(&count); err != nil {
		return "", fmt.Errorf("failed to count document numbers: %w", err)
	}
	return utils.FormatDocumentNumber(prefix, year, count+1), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	f := n.Float64
	return &f
}
