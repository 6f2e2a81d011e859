package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, validateUsername("keertana_g"))
	assert.Error(t, validateUsername("ab"))
	assert.Error(t, validateUsername("has spaces"))
	assert.Error(t, validateUsername("way_too_long_for_a_username_field_x"))
}

// Signup inserts the normalized form, so two spellings of the same name map
// to one stored username and collide on the unique index.
func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "bob", normalizeUsername("Bob"))
	assert.Equal(t, "bob", normalizeUsername("  BOB  "))
	assert.Equal(t, normalizeUsername("MediPrior_User"), normalizeUsername("mediprior_user"))
}
