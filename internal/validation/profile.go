// Package validation contains field validators for user-supplied profile data.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

const (
	// AgeMin and AgeMax bound the optional profile age.
	AgeMin = 16
	AgeMax = 60

	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 8
	maxNicknameLen = 32
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)
	phoneRe    = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{5,30}$`)
)

// ValidateUsername enforces length and character rules for usernames.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return fmt.Errorf("username must be between %d and %d characters", minUsernameLen, maxUsernameLen)
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("username may only contain letters, digits, underscores and dots")
	}
	return nil
}

// ValidateEmail checks the address parses per RFC 5322.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePassword enforces a minimum strength: length plus at least one
// letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain at least one letter and one digit")
	}
	return nil
}

// ValidateAge enforces the profile age bounds. A nil age is allowed.
func ValidateAge(age *int) error {
	if age == nil {
		return nil
	}
	if *age < AgeMin || *age > AgeMax {
		return fmt.Errorf("age must be between %d and %d", AgeMin, AgeMax)
	}
	return nil
}

// ValidatePhone checks the phone number shape. An empty phone is allowed.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phoneRe.MatchString(strings.TrimSpace(phone)) {
		return fmt.Errorf("invalid phone number")
	}
	return nil
}

// ValidateNickname bounds the optional display name.
func ValidateNickname(nickname string) error {
	if len(nickname) > maxNicknameLen {
		return fmt.Errorf("nickname must be at most %d characters", maxNicknameLen)
	}
	return nil
}
