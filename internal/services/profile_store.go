package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

// ProfileStore persists at most one health profile per user.
type ProfileStore interface {
	// Get returns the user's profile, or (nil, nil) when none exists yet.
	Get(ctx context.Context, userID string) (*models.Profile, error)
	// Save upserts the profile keyed by profile.UserID and returns the
	// stored row.
	Save(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

// ProfileInput carries the profile form exactly as the frontend submits it:
// every field as text. Numeric and date fields are parsed here so a
// malformed value is rejected with the offending field named instead of
// being coerced to zero.
type ProfileInput struct {
	Name         string `json:"name"`
	Age          string `json:"age"`
	DateOfBirth  string `json:"date_of_birth"`
	Gender       string `json:"gender"`
	WeightKg     string `json:"weight_kg"`
	HeightCm     string `json:"height_cm"`
	SubstanceUse string `json:"substance_use"`
	History      string `json:"history"`
}

const dateLayout = "2006-01-02"

// ParseProfileInput validates and converts form input into a Profile for
// userID. Empty strings mean "absent" for every optional field.
func ParseProfileInput(userID string, in ProfileInput) (*models.Profile, error) {
	p := &models.Profile{
		UserID: userID,
		Name:   strings.TrimSpace(in.Name),
	}

	if s := strings.TrimSpace(in.Age); s != "" {
		age, err := strconv.Atoi(s)
		if err != nil || age < 0 {
			return nil, apperrors.NewValidation("age", "must be a non-negative whole number")
		}
		p.Age = &age
	}

	if s := strings.TrimSpace(in.DateOfBirth); s != "" {
		dob, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, apperrors.NewValidation("date_of_birth", "must be a date in YYYY-MM-DD format")
		}
		p.DateOfBirth = &dob
	}

	if s := strings.ToLower(strings.TrimSpace(in.Gender)); s != "" {
		if s != models.GenderMale && s != models.GenderFemale && s != models.GenderOther {
			return nil, apperrors.NewValidation("gender", "must be one of male, female, other")
		}
		p.Gender = &s
	}

	if s := strings.TrimSpace(in.WeightKg); s != "" {
		w, err := strconv.ParseFloat(s, 64)
		if err != nil || w < 0 {
			return nil, apperrors.NewValidation("weight_kg", "must be a non-negative number")
		}
		p.WeightKg = &w
	}

	if s := strings.TrimSpace(in.HeightCm); s != "" {
		h, err := strconv.ParseFloat(s, 64)
		if err != nil || h < 0 {
			return nil, apperrors.NewValidation("height_cm", "must be a non-negative number")
		}
		p.HeightCm = &h
	}

	if s := strings.TrimSpace(in.SubstanceUse); s != "" {
		p.SubstanceUse = &s
	}
	if s := strings.TrimSpace(in.History); s != "" {
		p.History = &s
	}

	return p, nil
}
