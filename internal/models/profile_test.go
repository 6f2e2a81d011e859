package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfileComplete(t *testing.T) {
	age := 24
	dob := time.Date(2001, 3, 14, 0, 0, 0, 0, time.UTC)
	gender := GenderFemale

	cases := []struct {
		name    string
		profile *Profile
		want    bool
	}{
		{"nil profile", nil, false},
		{"all absent", &Profile{}, false},
		{"only age", &Profile{Age: &age}, false},
		{"only dob", &Profile{DateOfBirth: &dob}, false},
		{"only gender", &Profile{Gender: &gender}, false},
		{"age and dob", &Profile{Age: &age, DateOfBirth: &dob}, false},
		{"age and gender", &Profile{Age: &age, Gender: &gender}, false},
		{"dob and gender", &Profile{DateOfBirth: &dob, Gender: &gender}, false},
		{"all present", &Profile{Age: &age, DateOfBirth: &dob, Gender: &gender}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.profile.Complete())
		})
	}
}

func TestProfileComplete_ZeroValuesStillCount(t *testing.T) {
	// A present-but-zero age (a newborn) is still "present": completeness
	// depends on presence, not value.
	age := 0
	dob := time.Time{}
	gender := GenderOther

	p := &Profile{Age: &age, DateOfBirth: &dob, Gender: &gender}
	assert.True(t, p.Complete())
}

func TestProfileComplete_IgnoresOptionalExtras(t *testing.T) {
	weight := 58.5
	substanceUse := "none"
	p := &Profile{Name: "Keertana", WeightKg: &weight, SubstanceUse: &substanceUse}
	assert.False(t, p.Complete(), "weight and notes do not make a profile complete")
}
