package http

import (
	"time"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
)

// SavePortfolioRequest carries the full editor payload. Field requirements
// are deliberately absent here: validation happens downstream and comes back
// as field errors, not as a binding failure.
type SavePortfolioRequest struct {
	PortfolioTitle string `json:"portfolio_title"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Summary        string `json:"summary"`
	ProfilePicture struct {
		Kind  string `json:"kind"`
		Value string `json:"value"`
	} `json:"profile_picture"`
	Experience []struct {
		Title       string `json:"title"`
		Company     string `json:"company"`
		Dates       string `json:"dates"`
		Description string `json:"description"`
	} `json:"experience"`
	Education []struct {
		Degree      string `json:"degree"`
		Institution string `json:"institution"`
		Year        string `json:"year"`
	} `json:"education"`
	Skills []struct {
		Name  string `json:"name"`
		Level string `json:"level"`
	} `json:"skills"`
	Projects []struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Technologies string `json:"technologies"`
		LiveURL      string `json:"live_url"`
		RepoURL      string `json:"repo_url"`
	} `json:"projects"`
	Template string `json:"template"`
	Theme    string `json:"theme"`
}

func (r *SavePortfolioRequest) ToDomainPayload() portfolio.FormPayload {
	p := portfolio.FormPayload{
		PortfolioTitle: r.PortfolioTitle,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Summary:        r.Summary,
		ProfilePicture: portfolio.ProfilePicture{
			Kind:  portfolio.PictureKind(r.ProfilePicture.Kind),
			Value: r.ProfilePicture.Value,
		},
		Template: portfolio.Template(r.Template),
		Theme:    r.Theme,
	}

	p.Experience = make([]portfolio.Experience, len(r.Experience))
	for i, e := range r.Experience {
		p.Experience[i] = portfolio.Experience{
			Title: e.Title, Company: e.Company, Dates: e.Dates, Description: e.Description,
		}
	}
	p.Education = make([]portfolio.Education, len(r.Education))
	for i, e := range r.Education {
		p.Education[i] = portfolio.Education{
			Degree: e.Degree, Institution: e.Institution, Year: e.Year,
		}
	}
	p.Skills = make([]portfolio.Skill, len(r.Skills))
	for i, s := range r.Skills {
		p.Skills[i] = portfolio.Skill{Name: s.Name, Level: portfolio.SkillLevel(s.Level)}
	}
	p.Projects = make([]portfolio.Project, len(r.Projects))
	for i, pr := range r.Projects {
		p.Projects[i] = portfolio.Project{
			Title: pr.Title, Description: pr.Description, Technologies: pr.Technologies,
			LiveURL: pr.LiveURL, RepoURL: pr.RepoURL,
		}
	}
	return p
}

type FieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ToFieldErrorDTOs(errs []portfolio.FieldError) []FieldErrorDTO {
	dtos := make([]FieldErrorDTO, len(errs))
	for i, e := range errs {
		dtos[i] = FieldErrorDTO{Field: e.Field, Message: e.Message}
	}
	return dtos
}

type PortfolioSummaryDTO struct {
	ID             string    `json:"id"`
	PortfolioTitle string    `json:"portfolio_title"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Template       string    `json:"template"`
	IsPublic       bool      `json:"is_public"`
	CreatedAt      time.Time `json:"created_at"`
	LastModified   time.Time `json:"last_modified"`
}

func ToPortfolioSummaryDTO(r *portfolio.Record) PortfolioSummaryDTO {
	return PortfolioSummaryDTO{
		ID:             r.ID.String(),
		PortfolioTitle: r.PortfolioTitle,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Template:       string(r.Template),
		IsPublic:       r.IsPublic,
		CreatedAt:      r.CreatedAt,
		LastModified:   r.LastModified,
	}
}

type PortfolioDTO struct {
	ID             string                   `json:"id"`
	PortfolioTitle string                   `json:"portfolio_title"`
	FirstName      string                   `json:"first_name"`
	LastName       string                   `json:"last_name"`
	Email          string                   `json:"email"`
	Summary        string                   `json:"summary"`
	ProfilePicture portfolio.ProfilePicture `json:"profile_picture"`
	Experience     []portfolio.Experience   `json:"experience"`
	Education      []portfolio.Education    `json:"education"`
	Skills         []portfolio.Skill        `json:"skills"`
	Projects       []portfolio.Project      `json:"projects"`
	Template       string                   `json:"template"`
	Theme          string                   `json:"theme"`
	IsPublic       bool                     `json:"is_public"`
	CreatedAt      time.Time                `json:"created_at"`
	LastModified   time.Time                `json:"last_modified"`
}

func ToPortfolioDTO(r *portfolio.Record) PortfolioDTO {
	return PortfolioDTO{
		ID:             r.ID.String(),
		PortfolioTitle: r.PortfolioTitle,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Summary:        r.Summary,
		ProfilePicture: r.ProfilePicture,
		Experience:     r.Experience,
		Education:      r.Education,
		Skills:         r.Skills,
		Projects:       r.Projects,
		Template:       string(r.Template),
		Theme:          r.Theme,
		IsPublic:       r.IsPublic,
		CreatedAt:      r.CreatedAt,
		LastModified:   r.LastModified,
	}
}

type AssistRequest struct {
	Text string `json:"text" binding:"required"`
}

type AssistResponse struct {
	Text string `json:"text"`
}
