package database

import (
	"fmt"

	"razertr/internal/domain"
	"razertr/internal/domain/entities"
)

type catalogRow struct {
	ID             int64  `db:"id"`
	Locale         string `db:"locale"`
	Version        int32  `db:"version"`
	SourceLanguage string `db:"source_language"`
	FormatVersion  string `db:"format_version"`
	Context        string `db:"context"`
	Checksum       string `db:"checksum"`
}

type entryRow struct {
	Position    int32               `db:"position"`
	Source      string              `db:"source"`
	Translation string              `db:"translation"`
	Comment     string              `db:"comment"`
	Status      string              `db:"status"`
	Locations   []entities.Location `db:"locations"`
}

var entryColumns = []string{"catalog_id", "position", "source", "translation", "comment", "status", "locations"}

// catalogToDomain rebuilds a catalog and checks it against the stored
// checksum.
func catalogToDomain(head catalogRow, rows []entryRow) (*entities.Catalog, error) {
	c := entities.NewCatalog(head.Locale)
	c.SourceLanguage = head.SourceLanguage
	c.Version = head.FormatVersion
	c.Context = head.Context
	for _, r := range rows {
		err := c.Add(entities.Entry{
			Source:      r.Source,
			Translation: r.Translation,
			Comment:     r.Comment,
			Status:      entities.Status(r.Status),
			Locations:   r.Locations,
		})
		if err != nil {
			return nil, err
		}
	}
	if sum := c.Checksum(); sum != head.Checksum {
		return nil, fmt.Errorf("%w: %s version %d: checksum %s, stored %s", domain.ErrInvalidCatalog, head.Locale, head.Version, sum, head.Checksum)
	}
	return c, nil
}

func entryRows(catalogID int64, c *entities.Catalog) [][]any {
	entries := c.Entries()
	out := make([][]any, len(entries))
	for i, e := range entries {
		locations := e.Locations
		if locations == nil {
			locations = []entities.Location{}
		}
		out[i] = []any{catalogID, int32(i), e.Source, e.Translation, e.Comment, string(e.Status), locations}
	}
	return out
}
