package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPayload() FormPayload {
	return FormPayload{
		PortfolioTitle: "My Portfolio",
		FirstName:      "Ada",
		Email:          "ada@example.com",
		Projects: []Project{
			{Title: "Notes", LiveURL: "https://example.com", RepoURL: "https://github.com/ada/notes"},
		},
	}
}

func TestValidate_ValidPayload(t *testing.T) {
	assert.Empty(t, Validate(validPayload()))
}

func TestValidate_RequiredFields(t *testing.T) {
	p := validPayload()
	p.PortfolioTitle = "   "
	p.FirstName = ""

	errs := Validate(p)

	assert.Len(t, errs, 2)
	assert.Equal(t, "portfolio_title", errs[0].Field)
	assert.Equal(t, "Portfolio Title is required.", errs[0].Message)
	assert.Equal(t, "first_name", errs[1].Field)
	assert.Equal(t, "First Name is required.", errs[1].Message)
}

func TestValidate_LastNameNotRequired(t *testing.T) {
	p := validPayload()
	p.LastName = ""

	assert.Empty(t, Validate(p))
}

func TestValidate_Email(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"", true},
		{"   ", true},
		{"ada@example.com", true},
		{"ADA@EXAMPLE.COM", true},
		{"ada@example.co", true},
		{"ada@example.c", false},
		{"ada@example", false},
		{"ada example@foo.com", false},
		{"@example.com", false},
		{"ada@", false},
	}

	for _, tc := range cases {
		p := validPayload()
		p.Email = tc.email
		errs := Validate(p)
		if tc.ok {
			assert.Empty(t, errs, "email %q should pass", tc.email)
		} else {
			assert.Len(t, errs, 1, "email %q should fail", tc.email)
			assert.Equal(t, "email", errs[0].Field)
			assert.Equal(t, "Please enter a valid Email Address.", errs[0].Message)
		}
	}
}

func TestValidate_ProjectURLs(t *testing.T) {
	p := validPayload()
	p.Projects = []Project{
		{Title: "First", LiveURL: "not a url", RepoURL: ""},
		{Title: "Second", LiveURL: "https://ok.example.com", RepoURL: "also bad"},
	}

	errs := Validate(p)

	assert.Len(t, errs, 2)
	assert.Equal(t, "projects[0].live_url", errs[0].Field)
	assert.Equal(t, "Project 1: Live Demo URL is invalid.", errs[0].Message)
	assert.Equal(t, "projects[1].repo_url", errs[1].Field)
	assert.Equal(t, "Project 2: Source Code URL is invalid.", errs[1].Message)
}

func TestValidate_ErrorOrdering(t *testing.T) {
	p := FormPayload{
		Email: "broken",
		Projects: []Project{
			{Title: "P", LiveURL: "nope"},
		},
	}

	errs := Validate(p)

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.Equal(t, []string{"portfolio_title", "first_name", "email", "projects[0].live_url"}, fields)
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL(""))
	assert.True(t, IsValidURL("https://example.com/path?q=1"))
	assert.True(t, IsValidURL("http://localhost:3000"))
	assert.False(t, IsValidURL("example.com"))   // no scheme
	assert.False(t, IsValidURL("https://"))      // no host
	assert.False(t, IsValidURL("just some text"))
}
