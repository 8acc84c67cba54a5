package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"razertr/internal/domain"
)

func pairs(t *testing.T, keys []string, lookup func(string) (string, bool)) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, k := range keys {
		if v, ok := lookup(k); ok {
			out[k] = v
		}
	}
	return out
}

func TestFlatFormatsRoundTrip(t *testing.T) {
	catalogs, err := Embedded(context.Background())
	require.NoError(t, err)

	for _, c := range catalogs {
		for _, f := range []Format{FormatTOML, FormatYAML, FormatJSON, FormatTS} {
			t.Run(c.Locale+"/"+string(f), func(t *testing.T) {
				buf, err := Encode(c, f)
				require.NoError(t, err)

				back, err := Decode(FileName("razer", c.Locale, f), buf)
				require.NoError(t, err)

				assert.Equal(t, c.Locale, back.Locale)
				assert.Equal(t, pairs(t, c.Keys(), c.Translation), pairs(t, back.Keys(), back.Translation))
				assert.Equal(t, c.Keys(), back.Keys())
			})
		}
	}
}

func TestDecodeTOML(t *testing.T) {
	doc := []byte(`
"Scroll Wheel" = "Scrollrad"
Off = "Aus"
Rainbow = "Regenbogen"
`)
	c, err := Decode("razer.de.toml", doc)
	require.NoError(t, err)
	assert.Equal(t, "de", c.Locale)
	assert.Equal(t, []string{"Off", "Scroll Wheel", "Rainbow"}, c.Keys())
}

func TestDecodeYAMLLocaleFromName(t *testing.T) {
	c, err := Decode("labels.eo_001.yml", []byte("Wave: Ondo\n"))
	require.NoError(t, err)
	assert.Equal(t, "eo_001", c.Locale)
	got, ok := c.Translation("Wave")
	assert.True(t, ok)
	assert.Equal(t, "Ondo", got)
}

func TestDecodeKeepsStaleKeysNamedLikePluralForms(t *testing.T) {
	tests := map[string]string{
		"razer.de.yaml": "Off: Aus\nOther: Andere\nDescription: Beschreibung\n",
		"razer.de.toml": "Off = \"Aus\"\nOther = \"Andere\"\nDescription = \"Beschreibung\"\n",
		"razer.de.json": `{"Off": "Aus", "Other": "Andere", "Description": "Beschreibung"}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := Decode(name, []byte(doc))
			require.NoError(t, err)
			assert.Equal(t, []string{"Off", "Description", "Other"}, c.Keys())
			got, _ := c.Translation("Other")
			assert.Equal(t, "Andere", got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("razer.de.ini", []byte("Off=Aus"))
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	_, err = Decode("razer.de.toml", []byte("Off = "))
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	_, err = Decode("razer.de.yaml", []byte("Off:\n  other: Aus\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestFormatOf(t *testing.T) {
	for name, want := range map[string]Format{
		"razer_de.ts":     FormatTS,
		"razer.de.toml":   FormatTOML,
		"razer.de.yml":    FormatYAML,
		"razer.de.yaml":   FormatYAML,
		"razer.de.json":   FormatJSON,
		"dir/razer_nl.ts": FormatTS,
	} {
		got, ok := FormatOf(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := FormatOf("README.md")
	assert.False(t, ok)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "razer_nl_NL.ts", FileName("razer", "nl_NL", FormatTS))
	assert.Equal(t, "razer.nl_NL.toml", FileName("razer", "nl_NL", FormatTOML))
}
