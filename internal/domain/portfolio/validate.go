package portfolio

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// FieldError tags a validation message with the field it concerns. Validation
// failures are data, never Go errors: an empty slice means save-eligible.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

func IsNonEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsValidEmail accepts the empty string: email is an optional field and an
// absent value is never an error.
func IsValidEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	return emailRegex.MatchString(strings.ToLower(value))
}

// IsValidURL accepts the empty string; otherwise the value must parse as an
// absolute URL with both a scheme and a host.
func IsValidURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	u, err := url.Parse(value)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Validate checks a collected payload for save-eligibility. Error order is
// field declaration order, then project index order. The payload's collections
// may be nil; a nil collection is simply empty. lastName is deliberately not
// required.
func Validate(p FormPayload) []FieldError {
	var errs []FieldError

	if !IsNonEmpty(p.PortfolioTitle) {
		errs = append(errs, FieldError{Field: "portfolio_title", Message: "Portfolio Title is required."})
	}
	if !IsNonEmpty(p.FirstName) {
		errs = append(errs, FieldError{Field: "first_name", Message: "First Name is required."})
	}
	if !IsValidEmail(p.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid Email Address."})
	}

	for i, project := range p.Projects {
		if !IsValidURL(project.LiveURL) {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("projects[%d].live_url", i),
				Message: fmt.Sprintf("Project %d: Live Demo URL is invalid.", i+1),
			})
		}
		if !IsValidURL(project.RepoURL) {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("projects[%d].repo_url", i),
				Message: fmt.Sprintf("Project %d: Source Code URL is invalid.", i+1),
			})
		}
	}

	return errs
}
