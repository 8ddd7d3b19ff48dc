package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"storage-dashboard/internal/interface/api/rest/dto/auth"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72

	minUsernameLen = 3
	maxUsernameLen = 32
)

const (
	specialRuneSet = `!@#$%^&*(),.?":{}|<>`
	maxFilenameLen = 255
)

var e164Re = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))
	username := strings.TrimSpace(r.Username)
	phone := strings.TrimSpace(r.PhoneNumber)

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// username (required + length + allowed chars)
	if username == "" {
		errs["username"] = "username is required"
	} else if l := utf8.RuneCountInString(username); l < minUsernameLen || l > maxUsernameLen {
		errs["username"] = "username length must be 3–32 characters"
	} else if !isUsername(username) {
		errs["username"] = "allowed characters: letters, digits, '-', '_'"
	}

	// password (required + policy)
	if msg := passwordPolicyError(r.Password); msg != "" {
		errs["password"] = msg
	}

	// phone (optional + E.164)
	if phone != "" && !e164Re.MatchString(phone) {
		errs["phone_number"] = "must be in E.164 format (e.g., +33788888888)"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// passwordPolicyError enforces the signup requirement set: at least 8
// characters with an upper-case letter, a lower-case letter, a digit and a
// special character.
func passwordPolicyError(password string) string {
	if password == "" {
		return "password is required"
	}
	if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		return "password length must be 8–72 characters"
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialRuneSet, r):
			special = true
		}
	}
	if !upper {
		return "password must contain an uppercase letter"
	}
	if !lower {
		return "password must contain a lowercase letter"
	}
	if !digit {
		return "password must contain a number"
	}
	if !special {
		return "password must contain a special character"
	}

	return ""
}

func isUsername(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			continue
		}
		return false
	}
	return true
}

// ValidateFilename checks rename input before it reaches the directory.
func ValidateFilename(name string) map[string]string {
	errs := make(map[string]string)

	name = strings.TrimSpace(name)
	if name == "" {
		errs["filename"] = "filename is required"
	} else if utf8.RuneCountInString(name) > maxFilenameLen {
		errs["filename"] = "filename is too long"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
