package profile

import (
	"context"
	"fmt"

	"github.com/scholarmatch/scholarship-backend/internal/domain"
	"github.com/scholarmatch/scholarship-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

// SaveProfileRequest represents the save-profile payload. Only the email is
// validated; every other field is stored as given.
type SaveProfileRequest struct {
	Email             string  `json:"email" binding:"required"`
	FullName          *string `json:"full_name"`
	CurrentGPA        *string `json:"current_gpa"`
	EducationLevel    *string `json:"education_level"`
	MajorOfInterest   *string `json:"major_of_interest"`
	PersonalStatement *string `json:"personal_statement"`
	Extracurriculars  *string `json:"extracurriculars"`
}

// SaveProfile upserts the profile keyed by email and returns the stored row.
func (uc *ProfileUseCase) SaveProfile(ctx context.Context, req *SaveProfileRequest) (*domain.StudentProfile, error) {
	profile := &domain.StudentProfile{
		Email:             req.Email,
		FullName:          req.FullName,
		CurrentGPA:        req.CurrentGPA,
		EducationLevel:    req.EducationLevel,
		MajorOfInterest:   req.MajorOfInterest,
		PersonalStatement: req.PersonalStatement,
		Extracurriculars:  req.Extracurriculars,
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return profile, nil
}

// GetProfile returns the profile for an email.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, email string) (*domain.StudentProfile, error) {
	return uc.profileRepo.GetByEmail(ctx, email)
}
