package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"marbrerie-gestion/db"
	"marbrerie-gestion/models"
)

// ClientRepository handles database operations for clients
type ClientRepository struct{}

// NewClientRepository creates a new ClientRepository
func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

var _ ClientRepositoryInterface = (*ClientRepository)(nil)

const clientColumns = `id, name, company_id, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''), COALESCE(ice, ''), COALESCE(notes, ''), created_at, updated_at`

func scanClient(scanner interface{ Scan(...interface{}) error }) (*models.Client, error) {
	var c models.Client
	var companyID sql.NullInt64
	err := scanner.Scan(
		&c.ID,
		&c.Name,
		&companyID,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.ICE,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if companyID.Valid {
		c.CompanyID = &companyID.Int64
	}
	return &c, nil
}

// Create inserts a new client
func (r *ClientRepository) Create(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	log.Printf("📦 Create: Creating client name=%s", req.Name)

	query := `
		INSERT INTO clients (name, company_id, phone, email, address, ice, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + clientColumns

	row := db.DB.QueryRowContext(ctx, query,
		req.Name,
		req.CompanyID,
		nullString(req.Phone),
		nullString(req.Email),
		nullString(req.Address),
		nullString(req.ICE),
		nullString(req.Notes),
	)

	client, err := scanClient(row)
	if err != nil {
		log.Printf("❌ Create: Error inserting client: %v", err)
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}

	log.Printf("✅ Create: Successfully created client id=%d", client.ID)
	return client, nil
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	client, err := scanClient(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	return client, nil
}

// List retrieves clients, optionally filtered by a name/phone/ICE search
func (r *ClientRepository) List(ctx context.Context, search string) ([]models.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR phone ILIKE '%' || $1 || '%' OR ice ILIKE '%' || $1 || '%')
		ORDER BY name ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, nil
}

// Update updates a client
func (r *ClientRepository) Update(ctx context.Context, id int64, req *models.CreateClientRequest) (*models.Client, error) {
	query := `
		UPDATE clients
		SET name = $1, company_id = $2, phone = $3, email = $4, address = $5, ice = $6, notes = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + clientColumns

	row := db.DB.QueryRowContext(ctx, query,
		req.Name,
		req.CompanyID,
		nullString(req.Phone),
		nullString(req.Email),
		nullString(req.Address),
		nullString(req.ICE),
		nullString(req.Notes),
		id,
	)

	client, err := scanClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	log.Printf("✅ Update: Successfully updated client id=%d", id)
	return client, nil
}

// Delete removes a client
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("client not found")
	}

	log.Printf("✅ Delete: Successfully deleted client id=%d", id)
	return nil
}
