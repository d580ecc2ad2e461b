// Package editor exposes the edit-session operations as a typed command set,
// decoupled from the transport that carries them.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/internal/editor"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

type Action string

const (
	ActionNextStep      Action = "next_step"
	ActionPrevStep      Action = "prev_step"
	ActionSetField      Action = "set_field"
	ActionSetItemField  Action = "set_item_field"
	ActionAddItem       Action = "add_item"
	ActionRemoveItem    Action = "remove_item"
	ActionMoveItem      Action = "move_item"
	ActionSetPicture    Action = "set_picture"
	ActionRemovePicture Action = "remove_picture"
)

// Command is one editor mutation. Which of the optional fields matter depends
// on the action; everything else is ignored.
type Command struct {
	Action Action           `json:"action"`
	Group  editor.GroupKind `json:"group,omitempty"`
	Index  int              `json:"index,omitempty"`
	To     int              `json:"to,omitempty"`
	Field  string           `json:"field,omitempty"`
	Value  string           `json:"value,omitempty"`
}

type EditorUseCase struct {
	store  editor.Store
	repo   portfolio.Repository
	logger logger.Logger
}

func NewEditorUseCase(store editor.Store, repo portfolio.Repository, log logger.Logger) *EditorUseCase {
	return &EditorUseCase{store: store, repo: repo, logger: log}
}

// Open starts a fresh session, or re-opens an existing record into the buffer
// when recordID is set. Any previous session for the owner is discarded.
func (uc *EditorUseCase) Open(ctx context.Context, ownerID uuid.UUID, recordID *uuid.UUID) (*editor.Session, error) {
	s := editor.NewSession(ownerID)

	if recordID != nil {
		rec, err := uc.repo.FindByID(ctx, *recordID, ownerID)
		if err != nil {
			return nil, err
		}
		s.PopulateForm(rec)
	}

	if err := uc.store.Save(ctx, s); err != nil {
		return nil, apperror.NewInternal("failed to persist editor session", err)
	}
	return s, nil
}

// Apply dispatches one command against the owner's live session and persists
// the result. Out-of-range rows are invalid input; boundary navigation is a
// silent no-op.
func (uc *EditorUseCase) Apply(ctx context.Context, ownerID uuid.UUID, cmd Command) (*editor.Session, error) {
	s, err := uc.store.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	switch cmd.Action {
	case ActionNextStep:
		s.Next()
	case ActionPrevStep:
		s.Prev()
	case ActionSetField:
		uc.setField(s, cmd.Field, cmd.Value)
	case ActionSetItemField:
		err = uc.setItemField(s, cmd)
	case ActionAddItem:
		s.AddItem(cmd.Group)
	case ActionRemoveItem:
		err = s.RemoveItem(cmd.Group, cmd.Index)
	case ActionMoveItem:
		err = s.MoveItem(cmd.Group, cmd.Index, cmd.To)
	case ActionSetPicture:
		s.SetInlinePicture(cmd.Value)
	case ActionRemovePicture:
		s.RemovePicture()
	default:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown editor action '%s'", cmd.Action), nil)
	}
	if err != nil {
		if errors.Is(err, editor.ErrRowOutOfRange) {
			return nil, apperror.NewInvalidInput("row index out of range", err)
		}
		return nil, err
	}

	if err := uc.store.Save(ctx, s); err != nil {
		return nil, apperror.NewInternal("failed to persist editor session", err)
	}
	return s, nil
}

// Collect reads the session's current buffer into a payload for validation
// and save. Returns the record the session was opened from, uuid.Nil for a
// new record.
func (uc *EditorUseCase) Collect(ctx context.Context, ownerID uuid.UUID) (portfolio.FormPayload, uuid.UUID, error) {
	s, err := uc.store.Load(ctx, ownerID)
	if err != nil {
		return portfolio.FormPayload{}, uuid.Nil, err
	}
	return s.CollectFormData(), s.RecordID, nil
}

// Close drops the owner's session, typically after a successful save.
func (uc *EditorUseCase) Close(ctx context.Context, ownerID uuid.UUID) error {
	return uc.store.Delete(ctx, ownerID)
}

func (uc *EditorUseCase) setField(s *editor.Session, field, value string) {
	switch field {
	case "portfolio_title":
		s.PortfolioTitle = value
	case "first_name":
		s.FirstName = value
	case "last_name":
		s.LastName = value
	case "email":
		s.Email = value
	case "summary":
		s.Summary = value
	case "template":
		s.Template = portfolio.Template(value)
	case "theme":
		s.Theme = value
	}
	s.CheckField(field, value)
}

func (uc *EditorUseCase) setItemField(s *editor.Session, cmd Command) error {
	switch cmd.Group {
	case editor.GroupExperience:
		if cmd.Index < 0 || cmd.Index >= len(s.Experience) {
			return editor.ErrRowOutOfRange
		}
		row := &s.Experience[cmd.Index]
		switch cmd.Field {
		case "title":
			row.Title = cmd.Value
		case "company":
			row.Company = cmd.Value
		case "dates":
			row.Dates = cmd.Value
		case "description":
			row.Description = cmd.Value
		}
	case editor.GroupEducation:
		if cmd.Index < 0 || cmd.Index >= len(s.Education) {
			return editor.ErrRowOutOfRange
		}
		row := &s.Education[cmd.Index]
		switch cmd.Field {
		case "degree":
			row.Degree = cmd.Value
		case "institution":
			row.Institution = cmd.Value
		case "year":
			row.Year = cmd.Value
		}
	case editor.GroupSkills:
		if cmd.Index < 0 || cmd.Index >= len(s.Skills) {
			return editor.ErrRowOutOfRange
		}
		row := &s.Skills[cmd.Index]
		switch cmd.Field {
		case "name":
			row.Name = cmd.Value
		case "level":
			if lvl := portfolio.SkillLevel(cmd.Value); lvl.Valid() {
				row.Level = lvl
			}
		}
	case editor.GroupProjects:
		if cmd.Index < 0 || cmd.Index >= len(s.Projects) {
			return editor.ErrRowOutOfRange
		}
		row := &s.Projects[cmd.Index]
		switch cmd.Field {
		case "title":
			row.Title = cmd.Value
		case "description":
			row.Description = cmd.Value
		case "technologies":
			row.Technologies = cmd.Value
		case "live_url":
			row.LiveURL = cmd.Value
			s.CheckField("live_url", cmd.Value)
		case "repo_url":
			row.RepoURL = cmd.Value
			s.CheckField("repo_url", cmd.Value)
		}
	}
	return nil
}
