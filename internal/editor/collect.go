package editor

import (
	"strings"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
)

// PopulateForm resets the buffer and re-seeds it from a record: scalars,
// picture, every repeating group (or one blank row where the record's
// collection is empty), back to step 1, no validation decoration left active.
func (s *Session) PopulateForm(r *portfolio.Record) {
	s.RecordID = r.ID
	s.Step = StepProfile
	s.Invalid = map[string]bool{}

	s.PortfolioTitle = r.PortfolioTitle
	s.FirstName = r.FirstName
	s.LastName = r.LastName
	s.Email = r.Email
	s.Summary = r.Summary
	s.Picture = r.ProfilePicture
	if s.Picture.Kind == "" {
		s.Picture.Kind = portfolio.PictureNone
	}
	s.Template = r.Template
	s.Theme = r.Theme

	s.Experience = append([]portfolio.Experience(nil), r.Experience...)
	s.Education = append([]portfolio.Education(nil), r.Education...)
	s.Skills = append([]portfolio.Skill(nil), r.Skills...)
	s.Projects = append([]portfolio.Project(nil), r.Projects...)

	if len(s.Experience) == 0 {
		s.AddItem(GroupExperience)
	}
	if len(s.Education) == 0 {
		s.AddItem(GroupEducation)
	}
	if len(s.Skills) == 0 {
		s.AddItem(GroupSkills)
	}
	if len(s.Projects) == 0 {
		s.AddItem(GroupProjects)
	}
}

// CollectFormData reads the buffer into a structured payload. Field values are
// trimmed and rows that are blank in their primary required sub-fields are
// dropped, so an untouched placeholder row never reaches validation or
// storage.
func (s *Session) CollectFormData() portfolio.FormPayload {
	p := portfolio.FormPayload{
		PortfolioTitle: strings.TrimSpace(s.PortfolioTitle),
		FirstName:      strings.TrimSpace(s.FirstName),
		LastName:       strings.TrimSpace(s.LastName),
		Email:          strings.TrimSpace(s.Email),
		Summary:        strings.TrimSpace(s.Summary),
		ProfilePicture: s.Picture,
		Template:       s.Template,
		Theme:          s.Theme,
		Experience:     []portfolio.Experience{},
		Education:      []portfolio.Education{},
		Skills:         []portfolio.Skill{},
		Projects:       []portfolio.Project{},
	}
	if p.ProfilePicture.Kind == "" {
		p.ProfilePicture.Kind = portfolio.PictureNone
	}

	for _, e := range s.Experience {
		row := portfolio.Experience{
			Title:       strings.TrimSpace(e.Title),
			Company:     strings.TrimSpace(e.Company),
			Dates:       strings.TrimSpace(e.Dates),
			Description: strings.TrimSpace(e.Description),
		}
		if row.Title != "" || row.Company != "" {
			p.Experience = append(p.Experience, row)
		}
	}

	for _, e := range s.Education {
		row := portfolio.Education{
			Degree:      strings.TrimSpace(e.Degree),
			Institution: strings.TrimSpace(e.Institution),
			Year:        strings.TrimSpace(e.Year),
		}
		if row.Degree != "" || row.Institution != "" {
			p.Education = append(p.Education, row)
		}
	}

	for _, sk := range s.Skills {
		row := portfolio.Skill{Name: strings.TrimSpace(sk.Name), Level: sk.Level}
		if !row.Level.Valid() {
			row.Level = portfolio.LevelIntermediate
		}
		if row.Name != "" {
			p.Skills = append(p.Skills, row)
		}
	}

	for _, pr := range s.Projects {
		row := portfolio.Project{
			Title:        strings.TrimSpace(pr.Title),
			Description:  strings.TrimSpace(pr.Description),
			Technologies: strings.TrimSpace(pr.Technologies),
			LiveURL:      strings.TrimSpace(pr.LiveURL),
			RepoURL:      strings.TrimSpace(pr.RepoURL),
		}
		if row.Title != "" {
			p.Projects = append(p.Projects, row)
		}
	}

	return p
}

// CheckField re-runs the single-field predicate for one scalar field and
// toggles its advisory invalid marker. Returns the verdict. Unknown fields are
// always fine; only the full Validate pass gates save.
func (s *Session) CheckField(field, value string) bool {
	var ok bool
	switch field {
	case "portfolio_title", "first_name":
		ok = portfolio.IsNonEmpty(value)
	case "email":
		ok = portfolio.IsValidEmail(value)
	case "live_url", "repo_url":
		ok = portfolio.IsValidURL(value)
	default:
		ok = true
	}
	if s.Invalid == nil {
		s.Invalid = map[string]bool{}
	}
	if ok {
		delete(s.Invalid, field)
	} else {
		s.Invalid[field] = true
	}
	return ok
}
