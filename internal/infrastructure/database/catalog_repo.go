package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"razertr/internal/domain"
	"razertr/internal/domain/entities"
	"razertr/internal/ports/output"
)

var _ output.CatalogRepository = (*CatalogRepository)(nil)

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// CatalogRepository keeps every published version of every catalog.
type CatalogRepository struct {
	pool DB
}

func NewCatalogRepository(pool DB) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Save stores c as the next version of its locale. When the latest stored
// version has the same checksum nothing is written and that version is
// returned.
func (r *CatalogRepository) Save(ctx context.Context, c *entities.Catalog) (int, error) {
	checksum := c.Checksum()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	// one writer per locale at a time
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, c.Locale); err != nil {
		return 0, fmt.Errorf("lock catalog %s: %w", c.Locale, err)
	}

	var (
		version int32
		last    string
	)
	err = tx.QueryRow(ctx,
		`SELECT version, checksum FROM catalogs WHERE locale = $1 ORDER BY version DESC LIMIT 1`,
		c.Locale,
	).Scan(&version, &last)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		version = 0
	case err != nil:
		return 0, fmt.Errorf("get latest catalog %s: %w", c.Locale, err)
	case last == checksum:
		zap.L().Debug("database: catalog unchanged", zap.String("locale", c.Locale), zap.Int32("version", version))
		return int(version), nil
	}
	version++

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO catalogs (locale, version, source_language, format_version, context, checksum)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		c.Locale, version, c.SourceLanguage, c.Version, c.Context, checksum,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create catalog %s: %w", c.Locale, err)
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"catalog_entries"}, entryColumns, pgx.CopyFromRows(entryRows(id, c))); err != nil {
		return 0, fmt.Errorf("copy entries %s: %w", c.Locale, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit catalog %s: %w", c.Locale, err)
	}
	zap.L().Info("database: catalog saved", zap.String("locale", c.Locale), zap.Int32("version", version), zap.Int("entries", c.Len()))
	return int(version), nil
}

func (r *CatalogRepository) Latest(ctx context.Context, locale string) (*entities.Catalog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, locale, version, source_language, format_version, context, checksum
		 FROM catalogs WHERE locale = $1 ORDER BY version DESC LIMIT 1`,
		locale,
	)
	if err != nil {
		return nil, fmt.Errorf("get latest catalog %s: %w", locale, err)
	}
	head, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[catalogRow])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, locale)
	}
	if err != nil {
		return nil, fmt.Errorf("get latest catalog %s: %w", locale, err)
	}

	rows, err = r.pool.Query(ctx,
		`SELECT position, source, translation, comment, status, locations
		 FROM catalog_entries WHERE catalog_id = $1 ORDER BY position`,
		head.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("get entries %s: %w", locale, err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[entryRow])
	if err != nil {
		return nil, fmt.Errorf("get entries %s: %w", locale, err)
	}
	return catalogToDomain(head, entries)
}

// Catalogs returns the latest version of every stored locale.
func (r *CatalogRepository) Catalogs(ctx context.Context) ([]*entities.Catalog, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT locale FROM catalogs ORDER BY locale`)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	locales, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}

	out := make([]*entities.Catalog, 0, len(locales))
	for _, l := range locales {
		c, err := r.Latest(ctx, l)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
