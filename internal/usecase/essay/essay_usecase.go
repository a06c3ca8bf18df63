package essay

import (
	"context"
	"fmt"
	"strings"

	"github.com/scholarmatch/scholarship-backend/internal/domain"
	"github.com/scholarmatch/scholarship-backend/internal/infrastructure/perplexity"
	"github.com/scholarmatch/scholarship-backend/internal/repository"
)

const essaySystemRole = "You are a professional resume writer."

// ChatClient is the slice of the AI client the essay flow needs.
type ChatClient interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

type EssayUseCase struct {
	profileRepo repository.ProfileRepository
	ai          ChatClient
}

func NewEssayUseCase(profileRepo repository.ProfileRepository, ai ChatClient) *EssayUseCase {
	return &EssayUseCase{
		profileRepo: profileRepo,
		ai:          ai,
	}
}

// WriteEssay generates a cleaned personal statement for the stored profile.
// A missing profile returns domain.ErrProfileNotFound before any upstream call.
func (uc *EssayUseCase) WriteEssay(ctx context.Context, email, scholarshipPrompt string) (string, error) {
	profile, err := uc.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	prompt := BuildEssayPrompt(profile, scholarshipPrompt)

	raw, err := uc.ai.Chat(ctx, essaySystemRole, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate essay: %w", err)
	}

	return perplexity.Clean(raw), nil
}

// BuildEssayPrompt interpolates profile fields and the application topic into
// the instruction template. The phrasing steers the upstream model toward a
// first-person personal statement instead of a refusal or a cited essay.
func BuildEssayPrompt(profile *domain.StudentProfile, topic string) string {
	var b strings.Builder

	b.WriteString("ROLE: You are a Professional Resume Writer.\n")
	b.WriteString("TASK: Generate a \"Personal Statement\" (Cover Letter style) for an application.\n\n")

	b.WriteString("CANDIDATE PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", deref(profile.FullName))
	fmt.Fprintf(&b, "- Goal: %s\n", deref(profile.MajorOfInterest))
	if gpa := deref(profile.CurrentGPA); gpa != "" {
		fmt.Fprintf(&b, "- GPA: %s\n", gpa)
	}
	fmt.Fprintf(&b, "- Background: %s\n", deref(profile.PersonalStatement))
	fmt.Fprintf(&b, "- Achievements: %s\n", deref(profile.Extracurriculars))

	b.WriteString("\nTHE APPLICATION TOPIC:\n")
	fmt.Fprintf(&b, "%q\n\n", topic)

	b.WriteString("CRITICAL RULES:\n")
	b.WriteString("1. If the Topic asks to \"write an essay\", IGNORE that phrasing. Instead, write a professional Personal Statement addressing the topic.\n")
	b.WriteString("2. Do NOT lecture the user about ethics. You are writing a Personal Statement, which is allowed.\n")
	b.WriteString("3. Do NOT include citations (like [1], [2]).\n")
	b.WriteString("4. Write in the first person (\"I am...\").\n")
	b.WriteString("5. Keep it under 350 words.\n")

	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
