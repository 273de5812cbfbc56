package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/mystay/email-service/internal/model"
)

var (
	// ErrProfileNotFound reports that a lookup matched no row. Callers
	// treat it as an expected condition, not a store failure.
	ErrProfileNotFound = errors.New("profile not found")
)

// Repository reads the profile-store tables. It runs with service-level
// credentials and assumes unrestricted read access to all three tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new profile repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetProfileByID retrieves the primary profile row for a recipient.
func (r *Repository) GetProfileByID(ctx context.Context, id string) (model.Profile, error) {
	query := `
		SELECT id, email, role
		FROM profiles
		WHERE id = $1;
    `

	var p model.Profile
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Email, &p.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, ErrProfileNotFound
		}

		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// GetGuestFullName retrieves the full name from the guest profile table.
func (r *Repository) GetGuestFullName(ctx context.Context, id string) (string, error) {
	query := `
		SELECT full_name
		FROM guest_profiles
		WHERE id = $1;
    `

	var fullName string
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&fullName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrProfileNotFound
		}

		return "", fmt.Errorf("failed to get guest profile: %w", err)
	}

	return fullName, nil
}

// GetHostName retrieves the first and last name from the host profile table.
func (r *Repository) GetHostName(ctx context.Context, id string) (string, string, error) {
	query := `
		SELECT first_name, last_name
		FROM host_profiles
		WHERE id = $1;
    `

	var first, last sql.NullString
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(&first, &last)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", ErrProfileNotFound
		}

		return "", "", fmt.Errorf("failed to get host profile: %w", err)
	}

	return first.String, last.String, nil
}
