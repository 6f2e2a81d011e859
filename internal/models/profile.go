package models

import "time"

// Gender values accepted in a health profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Profile is the structured health record a user fills in. At most one row
// exists per user (keyed by UserID). Optional demographics are pointers so
// "absent" and "zero" stay distinguishable across both storage backends.
type Profile struct {
	UserID       string     `bson:"user_id" json:"user_id"`
	Name         string     `bson:"name" json:"name"`
	Age          *int       `bson:"age,omitempty" json:"age,omitempty"`
	DateOfBirth  *time.Time `bson:"date_of_birth,omitempty" json:"date_of_birth,omitempty"`
	Gender       *string    `bson:"gender,omitempty" json:"gender,omitempty"`
	WeightKg     *float64   `bson:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	HeightCm     *float64   `bson:"height_cm,omitempty" json:"height_cm,omitempty"`
	SubstanceUse *string    `bson:"substance_use,omitempty" json:"substance_use,omitempty"`
	History      *string    `bson:"history,omitempty" json:"history,omitempty"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}

// Complete reports whether the three required demographic fields are all
// present. It is recomputed on every read and never stored, so it cannot
// drift from the fields it is derived from.
func (p *Profile) Complete() bool {
	if p == nil {
		return false
	}
	return p.Age != nil && p.DateOfBirth != nil && p.Gender != nil
}
