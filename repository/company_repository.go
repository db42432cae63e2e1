package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"marbrerie-gestion/db"
	"marbrerie-gestion/models"
)

// CompanyRepository handles database operations for issuing companies
type CompanyRepository struct{}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{}
}

var _ CompanyRepositoryInterface = (*CompanyRepository)(nil)

const companyColumns = `id, name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(ice, ''), COALESCE(rc, ''), created_at, updated_at`

func scanCompany(scanner interface{ Scan(...interface{}) error }) (*models.Company, error) {
	var c models.Company
	err := scanner.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.ICE, &c.RC, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new company
func (r *CompanyRepository) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	query := `
		INSERT INTO companies (name, address, phone, ice, rc)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyColumns

	row := db.DB.QueryRowContext(ctx, query,
		req.Name,
		nullString(req.Address),
		nullString(req.Phone),
		nullString(req.ICE),
		nullString(req.RC),
	)

	company, err := scanCompany(row)
	if err != nil {
		log.Printf("❌ Create: Error inserting company: %v", err)
		return nil, fmt.Errorf("failed to insert company: %w", err)
	}

	log.Printf("✅ Create: Successfully created company id=%d", company.ID)
	return company, nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	company, err := scanCompany(db.DB.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("company not found")
		}
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}
	return company, nil
}

// List retrieves all companies
func (r *CompanyRepository) List(ctx context.Context) ([]models.Company, error) {
	rows, err := db.DB.QueryContext(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}
	defer rows.Close()

	companies := make([]models.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, *company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}

	return companies, nil
}

// Update updates a company
func (r *CompanyRepository) Update(ctx context.Context, id int64, req *models.CreateCompanyRequest) (*models.Company, error) {
	query := `
		UPDATE companies
		SET name = $1, address = $2, phone = $3, ice = $4, rc = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + companyColumns

	row := db.DB.QueryRowContext(ctx, query,
		req.Name,
		nullString(req.Address),
		nullString(req.Phone),
		nullString(req.ICE),
		nullString(req.RC),
		id,
	)

	company, err := scanCompany(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("company not found")
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return company, nil
}

// Delete removes a company
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("company not found")
	}

	return nil
}
