package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("alice_01"))
	assert.NoError(t, ValidateUsername("a.b.c"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("has space"))
	assert.Error(t, ValidateUsername("way-too-long-username-that-exceeds-the-limit"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("Alice <alice@example.com>"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("sunrise42"))
	assert.Error(t, ValidatePassword("short1"))
	assert.Error(t, ValidatePassword("lettersonly"))
	assert.Error(t, ValidatePassword("12345678"))
}

func TestValidateAge(t *testing.T) {
	age := func(v int) *int { return &v }

	assert.NoError(t, ValidateAge(nil))
	assert.NoError(t, ValidateAge(age(16)))
	assert.NoError(t, ValidateAge(age(60)))
	assert.Error(t, ValidateAge(age(15)))
	assert.Error(t, ValidateAge(age(61)))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone(""))
	assert.NoError(t, ValidatePhone("+996 555 123456"))
	assert.NoError(t, ValidatePhone("0312 123-456"))
	assert.Error(t, ValidatePhone("abc"))
}
