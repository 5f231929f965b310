package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"discal-backend/internal/apperr"
)

func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "john_doe", "User123", strings.Repeat("a", 20)}
	for _, u := range valid {
		assert.NoError(t, ValidateUsername(u), u)
	}

	invalid := []string{"", "ab", strings.Repeat("a", 21), "john doe", "john-doe", "jöhn"}
	for _, u := range invalid {
		err := ValidateUsername(u)
		assert.Error(t, err, u)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation), u)
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"john@example.com", "a.b+c@sub.domain.org"}
	for _, e := range valid {
		assert.NoError(t, ValidateEmail(e), e)
	}

	invalid := []string{"", "john", "john@", "@example.com", "john@example", "john @example.com"}
	for _, e := range invalid {
		err := ValidateEmail(e)
		assert.Error(t, err, e)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation), e)
	}
}

func TestValidateFullName(t *testing.T) {
	assert.NoError(t, ValidateFullName("John Doe"))
	assert.NoError(t, ValidateFullName(strings.Repeat("a", 100)))

	assert.Error(t, ValidateFullName(""))
	assert.Error(t, ValidateFullName("   "))
	assert.Error(t, ValidateFullName(strings.Repeat("a", 101)))
}

func TestActivateDeactivate(t *testing.T) {
	u := &User{IsActive: true}

	u.Deactivate()
	assert.False(t, u.IsActive)
	assert.False(t, u.UpdatedAt.IsZero())

	u.Activate()
	assert.True(t, u.IsActive)
}
