package services

import (
	"context"
	"database/sql"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/apperrors"
	"github.com/KeertanaGupta/Keertana-Mediprior/internal/models"
)

// PostgresProfileStore keeps profiles in the profiles table, one row per
// user enforced by the primary key.
type PostgresProfileStore struct {
	db *sql.DB
}

func NewPostgresProfileStore(db *sql.DB) *PostgresProfileStore {
	return &PostgresProfileStore{db: db}
}

func (s *PostgresProfileStore) Get(ctx context.Context, userID string) (*models.Profile, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, name, age, date_of_birth, gender, weight_kg, height_cm, substance_use, history, updated_at
		FROM profiles WHERE user_id = $1`, userID)

	var (
		p            models.Profile
		age          sql.NullInt64
		dob          sql.NullTime
		gender       sql.NullString
		weight       sql.NullFloat64
		height       sql.NullFloat64
		substanceUse sql.NullString
		history      sql.NullString
	)
	err := row.Scan(&p.UserID, &p.Name, &age, &dob, &gender, &weight, &height, &substanceUse, &history, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "get profile", Err: err}
	}

	if age.Valid {
		v := int(age.Int64)
		p.Age = &v
	}
	if dob.Valid {
		v := dob.Time
		p.DateOfBirth = &v
	}
	if gender.Valid {
		p.Gender = &gender.String
	}
	if weight.Valid {
		p.WeightKg = &weight.Float64
	}
	if height.Valid {
		p.HeightCm = &height.Float64
	}
	if substanceUse.Valid {
		p.SubstanceUse = &substanceUse.String
	}
	if history.Valid {
		p.History = &history.String
	}

	return &p, nil
}

func (s *PostgresProfileStore) Save(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	profile.UpdatedAt = metadataTimestamp()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, name, age, date_of_birth, gender, weight_kg, height_cm, substance_use, history, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			date_of_birth = EXCLUDED.date_of_birth,
			gender = EXCLUDED.gender,
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			substance_use = EXCLUDED.substance_use,
			history = EXCLUDED.history,
			updated_at = EXCLUDED.updated_at`,
		profile.UserID, profile.Name, profile.Age, profile.DateOfBirth, profile.Gender,
		profile.WeightKg, profile.HeightCm, profile.SubstanceUse, profile.History, profile.UpdatedAt)
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "save profile", Err: err}
	}

	return profile, nil
}
