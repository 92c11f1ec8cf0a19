package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// LeadRecord is the persisted shape of a lead: contact fields are fernet
// tokens, never plaintext.
type LeadRecord struct {
	ID                string
	Name              string
	EmailEncrypted    string
	PhoneEncrypted    string
	InvestmentAmount  string
	RiskPreference    string
	InvestmentHorizon string
	CreatedAt         time.Time
}

// LeadRepository provides data access methods for the lead table.
type LeadRepository struct {
	db *sql.DB
}

// NewLeadRepository creates a new LeadRepository with the provided database connection.
func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a new lead record.
func (r *LeadRepository) Create(record LeadRecord) error {
	query := `
        INSERT INTO lead (id, name, email_encrypted, phone_encrypted, investment_amount, risk_preference, investment_horizon, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.db.Exec(query,
		record.ID,
		record.Name,
		record.EmailEncrypted,
		record.PhoneEncrypted,
		record.InvestmentAmount,
		record.RiskPreference,
		record.InvestmentHorizon,
		record.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

// GetByID retrieves one lead record. Returns sql.ErrNoRows when the lead
// does not exist.
func (r *LeadRepository) GetByID(id string) (*LeadRecord, error) {
	query := `
        SELECT id, name, email_encrypted, phone_encrypted, investment_amount, risk_preference, investment_horizon, created_at
        FROM lead
        WHERE id = ?
    `

	var record LeadRecord
	var createdAt string

	err := r.db.QueryRow(query, id).Scan(
		&record.ID,
		&record.Name,
		&record.EmailEncrypted,
		&record.PhoneEncrypted,
		&record.InvestmentAmount,
		&record.RiskPreference,
		&record.InvestmentHorizon,
		&createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to query lead table: %w", err)
	}

	record.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lead created_at: %w", err)
	}
	return &record, nil
}

// List retrieves all lead records, newest first.
func (r *LeadRepository) List() ([]LeadRecord, error) {
	query := `
        SELECT id, name, email_encrypted, phone_encrypted, investment_amount, risk_preference, investment_horizon, created_at
        FROM lead
        ORDER BY created_at DESC
    `

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lead table: %w", err)
	}
	defer rows.Close()

	records := []LeadRecord{}
	for rows.Next() {
		var record LeadRecord
		var createdAt string

		err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.EmailEncrypted,
			&record.PhoneEncrypted,
			&record.InvestmentAmount,
			&record.RiskPreference,
			&record.InvestmentHorizon,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead row: %w", err)
		}

		record.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse lead created_at: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lead rows: %w", err)
	}
	return records, nil
}
