package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"microfin_intake/pkg/models"
)

// ApplicationRepo handles the storage of loan applications.
type ApplicationRepo struct{}

// NewApplicationRepo creates a new repository instance.
func NewApplicationRepo() *ApplicationRepo {
	return &ApplicationRepo{}
}

// Save persists an application under its resolved document ID.
// The JSONB payload is merged into the stored record rather than replaced,
// so a save from a section that never loaded the full record cannot wipe
// the other sections.
//
// Schema assumption:
// CREATE TABLE IF NOT EXISTS applications (
//   id TEXT PRIMARY KEY,
//   full_name TEXT,
//   identity_document TEXT,
//   loan_amount DOUBLE PRECISION,
//   status TEXT,
//   user_id TEXT,
//   user_region INT,
//   user_agency INT,
//   data JSONB,
//   updated_at TIMESTAMPTZ
// );
func (r *ApplicationRepo) Save(ctx context.Context, docID string, app *models.LoanApplication, officer *models.OfficerProfile) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("failed to marshal application: %w", err)
	}

	status := app.Review.CommitteeDecision
	if status == "" {
		status = "in_progress"
	}

	userID, region, agency := "", 0, 0
	if officer != nil {
		userID = officer.UID
		region = officer.Region
		agency = officer.Agency
	}

	query := `
		INSERT INTO applications (
			id, full_name, identity_document, loan_amount, status,
			user_id, user_region, user_agency, data, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id)
		DO UPDATE SET
			full_name = EXCLUDED.full_name,
			identity_document = EXCLUDED.identity_document,
			loan_amount = EXCLUDED.loan_amount,
			status = EXCLUDED.status,
			data = applications.data || EXCLUDED.data,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = pool.Exec(ctx, query,
		docID, app.FullName, app.IdentityDocument, app.LoanAmount.Float(), status,
		userID, region, agency, jsonData, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save application %s: %w", docID, err)
	}
	return nil
}

// Load retrieves the full application record for a document ID.
func (r *ApplicationRepo) Load(ctx context.Context, docID string) (*models.LoanApplication, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT data FROM applications WHERE id = $1`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, docID).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no application found for id %s", docID)
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}

	var app models.LoanApplication
	if err := json.Unmarshal(jsonData, &app); err != nil {
		return nil, fmt.Errorf("failed to unmarshal application data: %w", err)
	}
	return &app, nil
}

const summaryColumns = `id, full_name, identity_document, loan_amount, status,
	user_id, user_region, user_agency, updated_at`

// ListByOfficer returns summaries of the applications saved by one officer.
func (r *ApplicationRepo) ListByOfficer(ctx context.Context, userID string) ([]models.ApplicationSummary, error) {
	return r.list(ctx, `SELECT `+summaryColumns+` FROM applications WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
}

// ListByRegion returns summaries for every agency in a region.
func (r *ApplicationRepo) ListByRegion(ctx context.Context, region int) ([]models.ApplicationSummary, error) {
	return r.list(ctx, `SELECT `+summaryColumns+` FROM applications WHERE user_region = $1 ORDER BY updated_at DESC`, region)
}

// ListByAgency returns summaries for one agency.
func (r *ApplicationRepo) ListByAgency(ctx context.Context, region, agency int) ([]models.ApplicationSummary, error) {
	return r.list(ctx, `SELECT `+summaryColumns+` FROM applications WHERE user_region = $1 AND user_agency = $2 ORDER BY updated_at DESC`, region, agency)
}

func (r *ApplicationRepo) list(ctx context.Context, query string, args ...interface{}) ([]models.ApplicationSummary, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var out []models.ApplicationSummary
	for rows.Next() {
		var s models.ApplicationSummary
		var updatedAt time.Time
		if err := rows.Scan(&s.ID, &s.FullName, &s.IdentityDocument, &s.LoanAmount, &s.Status,
			&s.UserID, &s.UserRegion, &s.UserAgency, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		s.Date = updatedAt.Format("2006-01-02")
		out = append(out, s)
	}
	return out, rows.Err()
}
