package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/scholarmatch/scholarship-backend/internal/domain"
	"github.com/scholarmatch/scholarship-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert inserts a profile keyed by email, overwriting all mutable fields on
// conflict. user_id and created_at survive rewrites; updated_at does not.
func (r *profileRepository) Upsert(ctx context.Context, profile *domain.StudentProfile) error {
	query := `
		INSERT INTO student_profiles (
			user_id, email, full_name, current_gpa, education_level,
			major_of_interest, personal_statement, extracurriculars
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email)
		DO UPDATE SET
			full_name = EXCLUDED.full_name,
			current_gpa = EXCLUDED.current_gpa,
			education_level = EXCLUDED.education_level,
			major_of_interest = EXCLUDED.major_of_interest,
			personal_statement = EXCLUDED.personal_statement,
			extracurriculars = EXCLUDED.extracurriculars,
			updated_at = CURRENT_TIMESTAMP
		RETURNING user_id, subscription_status, is_friends_family, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		uuid.New().String(), profile.Email, profile.FullName, profile.CurrentGPA,
		profile.EducationLevel, profile.MajorOfInterest,
		profile.PersonalStatement, profile.Extracurriculars,
	).Scan(
		&profile.UserID, &profile.SubscriptionStatus, &profile.IsFriendsFamily,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.StudentProfile, error) {
	var profile domain.StudentProfile
	query := `SELECT * FROM student_profiles WHERE email = $1`
	err := r.db.GetContext(ctx, &profile, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) ListSummaries(ctx context.Context) ([]*domain.ProfileSummary, error) {
	var summaries []*domain.ProfileSummary
	query := `
		SELECT user_id, email, full_name, subscription_status, is_friends_family, created_at
		FROM student_profiles
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &summaries, query)
	return summaries, err
}

// Promote marks a profile as premium friends-and-family. A missing email
// affects zero rows and is not an error.
func (r *profileRepository) Promote(ctx context.Context, email string) error {
	query := `
		UPDATE student_profiles
		SET subscription_status = $1, is_friends_family = TRUE
		WHERE email = $2
	`
	_, err := r.db.ExecContext(ctx, query, domain.SubscriptionPremium, email)
	return err
}
