package admin

import (
	"context"
	"crypto/subtle"

	"github.com/scholarmatch/scholarship-backend/internal/domain"
	"github.com/scholarmatch/scholarship-backend/internal/repository"
)

type AdminUseCase struct {
	profileRepo repository.ProfileRepository
	pin         string
}

func NewAdminUseCase(profileRepo repository.ProfileRepository, pin string) *AdminUseCase {
	return &AdminUseCase{
		profileRepo: profileRepo,
		pin:         pin,
	}
}

// ListUsers returns all profile summaries, newest first.
func (uc *AdminUseCase) ListUsers(ctx context.Context) ([]*domain.ProfileSummary, error) {
	return uc.profileRepo.ListSummaries(ctx)
}

// Promote upgrades the profile matching email to premium friends-and-family.
// A wrong PIN rejects before any write; an unknown email is still a success.
func (uc *AdminUseCase) Promote(ctx context.Context, email, pin string) error {
	if subtle.ConstantTimeCompare([]byte(pin), []byte(uc.pin)) != 1 {
		return domain.ErrInvalidPIN
	}
	return uc.profileRepo.Promote(ctx, email)
}
