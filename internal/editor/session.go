// Package editor owns the in-progress edit buffer for one portfolio record:
// step navigation, repeating item groups, profile-picture state and the two
// transducers between the buffer and the structured record type. It has no
// transport or storage dependencies; sessions are plain serializable values.
package editor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
)

type GroupKind string

const (
	GroupExperience GroupKind = "experience"
	GroupEducation  GroupKind = "education"
	GroupSkills     GroupKind = "skills"
	GroupProjects   GroupKind = "projects"
)

// Steps of the editor, 1-based. The index is clamped to [StepProfile, StepFinal];
// navigation past either boundary is a no-op.
const (
	StepProfile    = 1
	StepExperience = 2
	StepEducation  = 3
	StepFinal      = 4 // skills and projects share the last step
)

var ErrRowOutOfRange = fmt.Errorf("row index out of range")

// Session is the edit buffer. Every step's fields stay present regardless of
// which step is active, so switching steps never loses data. A session is
// exclusively owned by one editing user; there is no concurrent-editor
// handling on top of it.
type Session struct {
	OwnerID  uuid.UUID `json:"owner_id"`
	RecordID uuid.UUID `json:"record_id"` // uuid.Nil while the record is unsaved

	Step int `json:"step"`

	PortfolioTitle string `json:"portfolio_title"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Summary        string `json:"summary"`

	Picture portfolio.ProfilePicture `json:"picture"`

	Experience []portfolio.Experience `json:"experience"`
	Education  []portfolio.Education  `json:"education"`
	Skills     []portfolio.Skill      `json:"skills"`
	Projects   []portfolio.Project    `json:"projects"`

	Template portfolio.Template `json:"template"`
	Theme    string             `json:"theme"`

	// Invalid holds the advisory live-validation markers, keyed the same way
	// Validate keys its field errors. Markers never block input; only the full
	// validation pass blocks save.
	Invalid map[string]bool `json:"invalid,omitempty"`
}

// NewSession returns a blank buffer on step 1 with one empty row per group,
// so every "add" affordance has a visible neighbour.
func NewSession(ownerID uuid.UUID) *Session {
	s := &Session{
		OwnerID:  ownerID,
		Step:     StepProfile,
		Picture:  portfolio.ProfilePicture{Kind: portfolio.PictureNone},
		Template: portfolio.TemplateModern,
		Invalid:  map[string]bool{},
	}
	s.AddItem(GroupExperience)
	s.AddItem(GroupEducation)
	s.AddItem(GroupSkills)
	s.AddItem(GroupProjects)
	return s
}

func (s *Session) Next() {
	if s.Step < StepFinal {
		s.Step++
	}
}

func (s *Session) Prev() {
	if s.Step > StepProfile {
		s.Step--
	}
}

// AddItem appends one blank row to the group. Skill rows default to the
// Intermediate level.
func (s *Session) AddItem(kind GroupKind) {
	switch kind {
	case GroupExperience:
		s.Experience = append(s.Experience, portfolio.Experience{})
	case GroupEducation:
		s.Education = append(s.Education, portfolio.Education{})
	case GroupSkills:
		s.Skills = append(s.Skills, portfolio.Skill{Level: portfolio.LevelIntermediate})
	case GroupProjects:
		s.Projects = append(s.Projects, portfolio.Project{})
	}
}

// RemoveItem deletes the row at index. Removal down to zero rows is allowed;
// the "add" affordance stays discoverable on an empty group.
func (s *Session) RemoveItem(kind GroupKind, index int) error {
	switch kind {
	case GroupExperience:
		if index < 0 || index >= len(s.Experience) {
			return ErrRowOutOfRange
		}
		s.Experience = append(s.Experience[:index], s.Experience[index+1:]...)
	case GroupEducation:
		if index < 0 || index >= len(s.Education) {
			return ErrRowOutOfRange
		}
		s.Education = append(s.Education[:index], s.Education[index+1:]...)
	case GroupSkills:
		if index < 0 || index >= len(s.Skills) {
			return ErrRowOutOfRange
		}
		s.Skills = append(s.Skills[:index], s.Skills[index+1:]...)
	case GroupProjects:
		if index < 0 || index >= len(s.Projects) {
			return ErrRowOutOfRange
		}
		s.Projects = append(s.Projects[:index], s.Projects[index+1:]...)
	}
	return nil
}

// MoveItem reorders a row from one position to another, as a drag gesture
// does. The resulting order is persisted verbatim.
func (s *Session) MoveItem(kind GroupKind, from, to int) error {
	switch kind {
	case GroupExperience:
		return moveRow(s.Experience, from, to)
	case GroupEducation:
		return moveRow(s.Education, from, to)
	case GroupSkills:
		return moveRow(s.Skills, from, to)
	case GroupProjects:
		return moveRow(s.Projects, from, to)
	}
	return nil
}

func moveRow[T any](rows []T, from, to int) error {
	if from < 0 || from >= len(rows) || to < 0 || to >= len(rows) {
		return ErrRowOutOfRange
	}
	row := rows[from]
	copy(rows[from:], rows[from+1:])
	copy(rows[to+1:], rows[to:])
	rows[to] = row
	return nil
}

// SetInlinePicture records a newly selected local file as a data-URI preview.
// It will be uploaded to the media host at save time.
func (s *Session) SetInlinePicture(dataURI string) {
	s.Picture = portfolio.ProfilePicture{Kind: portfolio.PictureInline, Value: dataURI}
}

// SetHostedPicture records an already-hosted image URL, kept as-is at save.
func (s *Session) SetHostedPicture(url string) {
	s.Picture = portfolio.ProfilePicture{Kind: portfolio.PictureHosted, Value: url}
}

func (s *Session) RemovePicture() {
	s.Picture = portfolio.ProfilePicture{Kind: portfolio.PictureNone}
}
