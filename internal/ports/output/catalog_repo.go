package output

import (
	"context"

	"razertr/internal/domain/entities"
)

// CatalogSource yields every locale catalog it knows about.
type CatalogSource interface {
	Catalogs(ctx context.Context) ([]*entities.Catalog, error)
}

// CatalogRepository keeps versioned copies of the catalogs.
type CatalogRepository interface {
	CatalogSource
	Save(ctx context.Context, catalog *entities.Catalog) (version int, err error)
	Latest(ctx context.Context, locale string) (*entities.Catalog, error)
}
