package repository

import (
	"context"

	"github.com/scholarmatch/scholarship-backend/internal/domain"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.StudentProfile) error
	GetByEmail(ctx context.Context, email string) (*domain.StudentProfile, error)
	ListSummaries(ctx context.Context) ([]*domain.ProfileSummary, error)
	Promote(ctx context.Context, email string) error
}
