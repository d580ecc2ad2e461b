package portfolio

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type SkillLevel string

const (
	LevelNovice       SkillLevel = "Novice"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case LevelNovice, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

type Template string

const (
	TemplateModern  Template = "modern"
	TemplateClassic Template = "classic"
	TemplateBold    Template = "bold"
)

// PictureKind says what the profile_picture value holds. The three states are
// mutually exclusive: exactly one of them applies at any time.
type PictureKind string

const (
	PictureNone   PictureKind = "none"
	PictureInline PictureKind = "inline" // data URI, not yet uploaded
	PictureHosted PictureKind = "hosted" // URL on the media host
)

type ProfilePicture struct {
	Kind  PictureKind `json:"kind"`
	Value string      `json:"value,omitempty"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Dates       string `json:"dates"`
	Description string `json:"description"` // Markdown
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type Skill struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

type Project struct {
	Title        string `json:"title"`
	Description  string `json:"description"` // Markdown
	Technologies string `json:"technologies"`
	LiveURL      string `json:"live_url,omitempty"`
	RepoURL      string `json:"repo_url,omitempty"`
}

// FormPayload is what the editor collects: every user-editable field, nothing
// the storage layer owns (identity, ownership, timestamps, visibility).
// It is also the JSON import/export document.
type FormPayload struct {
	PortfolioTitle string         `json:"portfolio_title"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Email          string         `json:"email,omitempty"`
	Summary        string         `json:"summary,omitempty"` // Markdown
	ProfilePicture ProfilePicture `json:"profile_picture"`
	Experience     []Experience   `json:"experience"`
	Education      []Education    `json:"education"`
	Skills         []Skill        `json:"skills"`
	Projects       []Project      `json:"projects"`
	Template       Template       `json:"template,omitempty"`
	Theme          string         `json:"theme,omitempty"`
}

// Record is the unit of persistence and rendering.
type Record struct {
	ID             uuid.UUID      `json:"id"`
	OwnerID        uuid.UUID      `json:"owner_id"`
	PortfolioTitle string         `json:"portfolio_title"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Email          string         `json:"email,omitempty"`
	Summary        string         `json:"summary,omitempty"`
	ProfilePicture ProfilePicture `json:"profile_picture"`
	Experience     []Experience   `json:"experience"`
	Education      []Education    `json:"education"`
	Skills         []Skill        `json:"skills"`
	Projects       []Project      `json:"projects"`
	Template       Template       `json:"template"`
	Theme          string         `json:"theme"`
	IsPublic       bool           `json:"is_public"`
	CreatedAt      time.Time      `json:"created_at"`
	LastModified   time.Time      `json:"last_modified"`
}

var ErrRecordNotFound = errors.New("portfolio not found")

// NewRecord stamps a freshly collected payload with identity and timestamp
// metadata. createdAt == lastModified at creation and the record starts
// private. Pure: the caller supplies the clock value.
func NewRecord(ownerID, id uuid.UUID, p FormPayload, now time.Time) *Record {
	return &Record{
		ID:             id,
		OwnerID:        ownerID,
		PortfolioTitle: p.PortfolioTitle,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Summary:        p.Summary,
		ProfilePicture: p.ProfilePicture,
		Experience:     p.Experience,
		Education:      p.Education,
		Skills:         p.Skills,
		Projects:       p.Projects,
		Template:       p.Template,
		Theme:          p.Theme,
		IsPublic:       false,
		CreatedAt:      now,
		LastModified:   now,
	}
}

// Updated overlays the payload onto an existing record. The payload wins on
// every field it carries; identity, ownership, visibility and createdAt are
// preserved and lastModified is refreshed. Collections are replaced wholesale,
// not diffed. Returns a new record, the input is left untouched.
func Updated(existing *Record, p FormPayload, now time.Time) *Record {
	r := *existing
	r.PortfolioTitle = p.PortfolioTitle
	r.FirstName = p.FirstName
	r.LastName = p.LastName
	r.Email = p.Email
	r.Summary = p.Summary
	r.ProfilePicture = p.ProfilePicture
	r.Experience = p.Experience
	r.Education = p.Education
	r.Skills = p.Skills
	r.Projects = p.Projects
	r.Template = p.Template
	r.Theme = p.Theme
	r.LastModified = now
	return &r
}

// Payload strips a record down to its user-editable fields. The result is
// what the editor re-opens and what JSON export writes: no identifier, no
// timestamps, no visibility flag.
func (r *Record) Payload() FormPayload {
	return FormPayload{
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
		Template:       r.Template,
		Theme:          r.Theme,
	}
}

// Repository is the owner-scoped persistence gateway. Delete removes the
// record and any public copy in the same transaction; Publish and Unpublish
// keep the is_public flag and the public copy in lockstep and are idempotent.
type Repository interface {
	Save(ctx context.Context, r *Record) error
	Update(ctx context.Context, r *Record) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Record, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Record, error)
	Publish(ctx context.Context, id, ownerID uuid.UUID) (*Record, error)
	Unpublish(ctx context.Context, id, ownerID uuid.UUID) error
}

// PublicRepository reads the denormalized public copies. No authentication is
// involved; the share view and the feed are its only consumers. Remove exists
// so the worker can repair an orphaned copy.
type PublicRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Record, error)
	ListRecent(ctx context.Context, limit int) ([]*Record, error)
	Remove(ctx context.Context, id uuid.UUID) error
}
