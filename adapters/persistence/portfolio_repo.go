package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

type postgresPortfolioRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPortfolioRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.Repository {
	return &postgresPortfolioRepo{db: db, logger: logger}
}

var psqlPortfolio = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const portfolioColumns = "id, owner_id, portfolio_title, first_name, last_name, email, summary, profile_picture, experience, education, skills, projects, template, theme, is_public, created_at, last_modified"

// sections marshals the four collection groups and the picture for JSONB
// storage. Collections are stored wholesale, matching replace-on-update
// semantics upstream.
type sections struct {
	picture    []byte
	experience []byte
	education  []byte
	skills     []byte
	projects   []byte
}

func marshalSections(r *portfolio.Record) (sections, error) {
	var s sections
	var err error
	if s.picture, err = json.Marshal(r.ProfilePicture); err != nil {
		return s, apperror.NewInternal("failed to marshal profile picture", err)
	}
	if s.experience, err = json.Marshal(r.Experience); err != nil {
		return s, apperror.NewInternal("failed to marshal experience rows", err)
	}
	if s.education, err = json.Marshal(r.Education); err != nil {
		return s, apperror.NewInternal("failed to marshal education rows", err)
	}
	if s.skills, err = json.Marshal(r.Skills); err != nil {
		return s, apperror.NewInternal("failed to marshal skill rows", err)
	}
	if s.projects, err = json.Marshal(r.Projects); err != nil {
		return s, apperror.NewInternal("failed to marshal project rows", err)
	}
	return s, nil
}

func scanPortfolio(row pgx.Row, l logger.Logger) (*portfolio.Record, error) {
	r := &portfolio.Record{}
	var pictureBytes, expBytes, eduBytes, skillBytes, projBytes []byte

	err := row.Scan(
		&r.ID,
		&r.OwnerID,
		&r.PortfolioTitle,
		&r.FirstName,
		&r.LastName,
		&r.Email,
		&r.Summary,
		&pictureBytes,
		&expBytes,
		&eduBytes,
		&skillBytes,
		&projBytes,
		&r.Template,
		&r.Theme,
		&r.IsPublic,
		&r.CreatedAt,
		&r.LastModified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("portfolio", "")
		}
		return nil, apperror.NewInternal("failed to scan portfolio row", err)
	}

	if err := json.Unmarshal(pictureBytes, &r.ProfilePicture); err != nil {
		l.Warn("Failed to unmarshal profile picture", zap.String("portfolio_id", r.ID.String()), zap.Error(err))
		r.ProfilePicture = portfolio.ProfilePicture{Kind: portfolio.PictureNone}
	}
	if err := json.Unmarshal(expBytes, &r.Experience); err != nil {
		l.Warn("Failed to unmarshal experience rows", zap.String("portfolio_id", r.ID.String()), zap.Error(err))
		r.Experience = []portfolio.Experience{}
	}
	if err := json.Unmarshal(eduBytes, &r.Education); err != nil {
		l.Warn("Failed to unmarshal education rows", zap.String("portfolio_id", r.ID.String()), zap.Error(err))
		r.Education = []portfolio.Education{}
	}
	if err := json.Unmarshal(skillBytes, &r.Skills); err != nil {
		l.Warn("Failed to unmarshal skill rows", zap.String("portfolio_id", r.ID.String()), zap.Error(err))
		r.Skills = []portfolio.Skill{}
	}
	if err := json.Unmarshal(projBytes, &r.Projects); err != nil {
		l.Warn("Failed to unmarshal project rows", zap.String("portfolio_id", r.ID.String()), zap.Error(err))
		r.Projects = []portfolio.Project{}
	}

	return r, nil
}

func scanPortfolios(rows pgx.Rows, l logger.Logger) ([]*portfolio.Record, error) {
	defer rows.Close()
	records := make([]*portfolio.Record, 0)

	for rows.Next() {
		r, err := scanPortfolio(rows, l)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating portfolio rows", err)
	}
	return records, nil
}

func (r *postgresPortfolioRepo) Save(ctx context.Context, rec *portfolio.Record) error {
	s, err := marshalSections(rec)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO portfolios (` + portfolioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err = r.db.Exec(ctx, query,
		rec.ID, rec.OwnerID, rec.PortfolioTitle, rec.FirstName, rec.LastName,
		rec.Email, rec.Summary, s.picture, s.experience, s.education,
		s.skills, s.projects, rec.Template, rec.Theme, rec.IsPublic,
		rec.CreatedAt, rec.LastModified,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("portfolio", "id", rec.ID.String())
		}
		return apperror.NewInternal("failed to save portfolio", err)
	}
	return nil
}

func (r *postgresPortfolioRepo) Update(ctx context.Context, rec *portfolio.Record) error {
	s, err := marshalSections(rec)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin update transaction", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE portfolios SET
			portfolio_title = $3, first_name = $4, last_name = $5, email = $6,
			summary = $7, profile_picture = $8, experience = $9, education = $10,
			skills = $11, projects = $12, template = $13, theme = $14,
			last_modified = $15
		WHERE id = $1 AND owner_id = $2
	`
	cmdTag, err := tx.Exec(ctx, query,
		rec.ID, rec.OwnerID, rec.PortfolioTitle, rec.FirstName, rec.LastName,
		rec.Email, rec.Summary, s.picture, s.experience, s.education,
		s.skills, s.projects, rec.Template, rec.Theme, rec.LastModified,
	)
	if err != nil {
		return apperror.NewInternal("failed to update portfolio", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("portfolio", rec.ID.String())
	}

	// A public record's shared copy follows every edit so the share URL never
	// serves stale content.
	if err := syncPublicCopy(ctx, tx, rec.ID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit update transaction", err)
	}
	return nil
}

func (r *postgresPortfolioRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin delete transaction", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `DELETE FROM portfolios WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete portfolio", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("portfolio", id.String())
	}

	// The public copy goes in the same transaction: a deleted record must not
	// stay reachable through its share URL.
	if _, err := tx.Exec(ctx, `DELETE FROM public_portfolios WHERE id = $1`, id); err != nil {
		return apperror.NewInternal("failed to delete public copy", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit delete transaction", err)
	}
	return nil
}

func (r *postgresPortfolioRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*portfolio.Record, error) {
	query := `
		SELECT ` + portfolioColumns + `
		FROM portfolios
		WHERE id = $1 AND owner_id = $2
	`
	row := r.db.QueryRow(ctx, query, id, ownerID)
	return scanPortfolio(row, r.logger)
}

func (r *postgresPortfolioRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*portfolio.Record, error) {
	builder := psqlPortfolio.Select(portfolioColumns).
		From("portfolios").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("last_modified DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list by owner query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query portfolios by owner", err)
	}

	return scanPortfolios(rows, r.logger)
}

// Publish flips the record public and writes the denormalized copy in one
// transaction. Publishing an already-public record refreshes the copy and
// succeeds.
func (r *postgresPortfolioRepo) Publish(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*portfolio.Record, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to begin publish transaction", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `UPDATE portfolios SET is_public = true WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return nil, apperror.NewInternal("failed to mark portfolio public", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperror.NewNotFound("portfolio", id.String())
	}

	if err := syncPublicCopy(ctx, tx, id); err != nil {
		return nil, err
	}

	row := tx.QueryRow(ctx, `SELECT `+portfolioColumns+` FROM portfolios WHERE id = $1`, id)
	rec, err := scanPortfolio(row, r.logger)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewInternal("failed to commit publish transaction", err)
	}
	return rec, nil
}

// Unpublish flips the record private and drops the public copy. Unpublishing
// a private record is a no-op that succeeds.
func (r *postgresPortfolioRepo) Unpublish(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin unpublish transaction", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `UPDATE portfolios SET is_public = false WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to mark portfolio private", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("portfolio", id.String())
	}

	if _, err := tx.Exec(ctx, `DELETE FROM public_portfolios WHERE id = $1`, id); err != nil {
		return apperror.NewInternal("failed to remove public copy", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit unpublish transaction", err)
	}
	return nil
}

// syncPublicCopy upserts the public_portfolios row from the private record,
// but only when the record is public. Runs inside the caller's transaction.
func syncPublicCopy(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `
		INSERT INTO public_portfolios (` + portfolioColumns + `)
		SELECT ` + portfolioColumns + `
		FROM portfolios
		WHERE id = $1 AND is_public = true
		ON CONFLICT (id) DO UPDATE SET
			portfolio_title = EXCLUDED.portfolio_title,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			summary = EXCLUDED.summary,
			profile_picture = EXCLUDED.profile_picture,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			skills = EXCLUDED.skills,
			projects = EXCLUDED.projects,
			template = EXCLUDED.template,
			theme = EXCLUDED.theme,
			is_public = EXCLUDED.is_public,
			last_modified = EXCLUDED.last_modified
	`
	if _, err := tx.Exec(ctx, query, id); err != nil {
		return apperror.NewInternal("failed to sync public copy", err)
	}
	return nil
}
