package common

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 50 {
		return InvalidArgument("username must be between 3 and 50 characters")
	}

	if !usernameRegex.MatchString(username) {
		return InvalidArgument("username can only contain letters, numbers and underscores")
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return InvalidArgument("password must be at least 6 characters long")
	}

	if len(password) > 100 {
		return InvalidArgument("password is too long")
	}

	return nil
}

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return InvalidArgument("email is required")
	}
	if !emailRegex.MatchString(email) {
		return InvalidArgument("invalid email format")
	}

	return nil
}

func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 100 {
		return InvalidArgument("display name must be between 1 and 100 characters")
	}
	return nil
}
