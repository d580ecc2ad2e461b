package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/folioforge/folioforge/internal/domain/portfolio"
	"github.com/folioforge/folioforge/pkg/apperror"
	"github.com/folioforge/folioforge/pkg/logger"
)

type postgresPublicRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPublicRepo(db *pgxpool.Pool, logger logger.Logger) portfolio.PublicRepository {
	return &postgresPublicRepo{db: db, logger: logger}
}

func (r *postgresPublicRepo) FindByID(ctx context.Context, id uuid.UUID) (*portfolio.Record, error) {
	query := `
		SELECT ` + portfolioColumns + `
		FROM public_portfolios
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)
	return scanPortfolio(row, r.logger)
}

func (r *postgresPublicRepo) ListRecent(ctx context.Context, limit int) ([]*portfolio.Record, error) {
	builder := psqlPortfolio.Select(portfolioColumns).
		From("public_portfolios").
		OrderBy("last_modified DESC").
		Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list recent query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query recent public portfolios", err)
	}

	return scanPortfolios(rows, r.logger)
}

// Remove deletes a public copy by id. Removing a copy that is already gone
// succeeds, so the worker can replay events safely.
func (r *postgresPublicRepo) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM public_portfolios WHERE id = $1`, id); err != nil {
		return apperror.NewInternal("failed to remove public copy", err)
	}
	return nil
}
