package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"razertr/internal/domain"
	"razertr/internal/domain/entities"
)

func germanCatalog(t *testing.T) *entities.Catalog {
	t.Helper()
	c := entities.NewCatalog("de")
	c.Version = "2.1"
	c.Context = "libopenrazer"
	require.NoError(t, c.Add(entities.Entry{Source: "Off", Translation: "Aus", Locations: []entities.Location{{File: "../include/libopenrazer.h", Line: 32}}}))
	require.NoError(t, c.Add(entities.Entry{Source: "Wave", Translation: "Welle"}))
	require.NoError(t, c.Add(entities.Entry{Source: "Logo", Status: entities.StatusUnfinished}))
	return c
}

func TestEntryRows(t *testing.T) {
	rows := entryRows(7, germanCatalog(t))
	require.Len(t, rows, 3)
	assert.Len(t, rows[0], len(entryColumns))
	assert.Equal(t, []any{int64(7), int32(1), "Wave", "Welle", "", "", []entities.Location{}}, rows[1])
	assert.Equal(t, "unfinished", rows[2][5])
}

func TestCatalogToDomain(t *testing.T) {
	orig := germanCatalog(t)
	head := catalogRow{
		ID:             7,
		Locale:         "de",
		Version:        3,
		SourceLanguage: "en",
		FormatVersion:  "2.1",
		Context:        "libopenrazer",
		Checksum:       orig.Checksum(),
	}
	var rows []entryRow
	for i, e := range orig.Entries() {
		rows = append(rows, entryRow{
			Position:    int32(i),
			Source:      e.Source,
			Translation: e.Translation,
			Comment:     e.Comment,
			Status:      string(e.Status),
			Locations:   e.Locations,
		})
	}

	c, err := catalogToDomain(head, rows)
	require.NoError(t, err)
	assert.Equal(t, orig.Entries(), c.Entries())
	assert.Equal(t, "2.1", c.Version)
	assert.Equal(t, "libopenrazer", c.Context)

	head.Checksum = "xxh3:tampered"
	_, err = catalogToDomain(head, rows)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}
