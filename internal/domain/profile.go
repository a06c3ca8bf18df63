package domain

import (
	"errors"
	"time"
)

// Subscription status values stored in student_profiles.
const (
	SubscriptionFree    = "free"
	SubscriptionPremium = "premium"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidPIN      = errors.New("invalid admin pin")
)

type StudentProfile struct {
	UserID             string    `json:"user_id" db:"user_id"`
	Email              string    `json:"email" db:"email"`
	FullName           *string   `json:"full_name" db:"full_name"`
	CurrentGPA         *string   `json:"current_gpa" db:"current_gpa"`
	EducationLevel     *string   `json:"education_level" db:"education_level"`
	MajorOfInterest    *string   `json:"major_of_interest" db:"major_of_interest"`
	PersonalStatement  *string   `json:"personal_statement" db:"personal_statement"`
	Extracurriculars   *string   `json:"extracurriculars" db:"extracurriculars"`
	SubscriptionStatus string    `json:"subscription_status" db:"subscription_status"`
	IsFriendsFamily    bool      `json:"is_friends_family" db:"is_friends_family"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// ProfileSummary is the fixed projection returned by the admin listing.
type ProfileSummary struct {
	UserID             string    `json:"user_id" db:"user_id"`
	Email              string    `json:"email" db:"email"`
	FullName           *string   `json:"full_name" db:"full_name"`
	SubscriptionStatus string    `json:"subscription_status" db:"subscription_status"`
	IsFriendsFamily    bool      `json:"is_friends_family" db:"is_friends_family"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
