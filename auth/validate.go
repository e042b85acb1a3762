package auth

import (
	"regexp"
	"strings"
)

var emailRx = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerForm struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AcceptTerms     bool   `json:"acceptTerms"`
}

// validateLogin returns per-field messages; an empty map means the form is
// acceptable.
func validateLogin(f loginForm) map[string]string {
	errs := map[string]string{}

	if f.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRx.MatchString(f.Email) {
		errs["email"] = "Email is not valid"
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	return errs
}

func validateRegister(f registerForm) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(f.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}

	if f.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailRx.MatchString(f.Email) {
		errs["email"] = "Email is not valid"
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	if f.ConfirmPassword == "" {
		errs["confirmPassword"] = "Confirm your password"
	} else if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	if !f.AcceptTerms {
		errs["acceptTerms"] = "You must accept the terms and conditions"
	}

	return errs
}
