package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"razertr/internal/domain"
)

func TestCatalogAddMergesLocations(t *testing.T) {
	c := NewCatalog("de")
	require.NoError(t, c.Add(Entry{Source: "Breathing", Translation: "Atmen", Locations: []Location{{File: "../include/libopenrazer.h", Line: 35}}}))
	require.NoError(t, c.Add(Entry{Source: "Breathing", Translation: "Atmen", Locations: []Location{{File: "../include/libopenrazer.h", Line: 38}}}))

	require.Equal(t, 1, c.Len())
	e, ok := c.Entry("Breathing")
	require.True(t, ok)
	assert.Len(t, e.Locations, 2)
}

func TestCatalogAddRejectsConflict(t *testing.T) {
	c := NewCatalog("de")
	require.NoError(t, c.Add(Entry{Source: "Wave", Translation: "Welle"}))

	err := c.Add(Entry{Source: "Wave", Translation: "Woge"})
	require.ErrorIs(t, err, domain.ErrDuplicateKey)

	err = c.Add(Entry{Source: ""})
	require.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestCatalogTranslation(t *testing.T) {
	c := NewCatalog("nl_NL")
	require.NoError(t, c.Add(Entry{Source: "Static", Translation: "Statisch"}))
	require.NoError(t, c.Add(Entry{Source: "Wave", Translation: "Golf", Status: StatusUnfinished}))
	require.NoError(t, c.Add(Entry{Source: "Logo", Translation: ""}))

	tests := map[string]struct {
		key  string
		want string
		ok   bool
	}{
		"finished":   {"Static", "Statisch", true},
		"unfinished": {"Wave", "", false},
		"empty":      {"Logo", "", false},
		"missing":    {"Battery", "", false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := c.Translation(tc.key)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCatalogKeepsOrder(t *testing.T) {
	c := NewCatalog("eo_001")
	for _, k := range []string{"Wave", "Off", "Logo"} {
		require.NoError(t, c.Add(Entry{Source: k, Translation: k}))
	}
	assert.Equal(t, []string{"Wave", "Off", "Logo"}, c.Keys())
}

func TestCatalogChecksum(t *testing.T) {
	a := NewCatalog("de")
	require.NoError(t, a.Add(Entry{Source: "Off", Translation: "Aus", Locations: []Location{{File: "a.h", Line: 1}}}))
	b := NewCatalog("de")
	require.NoError(t, b.Add(Entry{Source: "Off", Translation: "Aus", Comment: "lighting"}))

	assert.Equal(t, a.Checksum(), b.Checksum())

	require.NoError(t, b.Add(Entry{Source: "On", Translation: "An"}))
	assert.NotEqual(t, a.Checksum(), b.Checksum())
}

func TestSourceCatalog(t *testing.T) {
	src := SourceCatalog()

	for _, e := range Effects() {
		got, ok := src.Translation(e.Label)
		require.True(t, ok, e.Label)
		assert.Equal(t, e.Label, got)
	}
	for _, id := range LedIDs() {
		_, ok := src.Translation(id.Label())
		assert.True(t, ok, id.Label())
	}
	for _, s := range ChargingStates() {
		_, ok := src.Translation(s.Label())
		assert.True(t, ok, s.Label())
	}
	assert.Equal(t, len(Effects())+len(LedIDs())+len(ChargingStates()), src.Len())
}
