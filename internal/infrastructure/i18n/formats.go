package i18n

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"razertr/internal/domain"
	"razertr/internal/domain/entities"
	"razertr/internal/infrastructure/linguist"
	"razertr/pkg/locale"
)

// Format is a resource file format a catalog can be read from and written to.
type Format string

const (
	FormatTS   Format = "ts"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var unmarshalFuncs = map[Format]i18n.UnmarshalFunc{
	FormatTOML: toml.Unmarshal,
	FormatYAML: yaml.Unmarshal,
	FormatJSON: json.Unmarshal,
}

// FormatOf returns the format of a resource by its file extension.
func FormatOf(name string) (Format, bool) {
	switch strings.TrimPrefix(path.Ext(name), ".") {
	case "ts":
		return FormatTS, true
	case "toml":
		return FormatTOML, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	}
	return "", false
}

// FileName names the resource of locale loc in format f so that Decode can
// recover the locale from it, e.g. "razer.nl_NL.toml".
func FileName(prefix, loc string, f Format) string {
	if f == FormatTS {
		return fmt.Sprintf("%s_%s.ts", prefix, loc)
	}
	return fmt.Sprintf("%s.%s.%s", prefix, loc, f)
}

// Decode parses a resource. Flat key/value files take their locale from the
// file name ("razer.de.toml"); .ts files carry it inside.
func Decode(name string, buf []byte) (*entities.Catalog, error) {
	f, ok := FormatOf(name)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported file %s", domain.ErrInvalidCatalog, name)
	}
	if f == FormatTS {
		return linguist.Decode(bytes.NewReader(buf))
	}

	// only the locale is taken from go-i18n; its message parsing treats keys
	// such as "Other" or "Description" as plural forms
	mf, err := i18n.ParseMessageFileBytes(nil, name, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCatalog, name, err)
	}
	if mf.Tag == language.Und {
		return nil, fmt.Errorf("%w: no locale in file name %s", domain.ErrUnknownLocale, name)
	}

	flat := map[string]string{}
	if len(bytes.TrimSpace(buf)) > 0 {
		if err := unmarshalFuncs[f](buf, &flat); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCatalog, name, err)
		}
	}

	c := entities.NewCatalog(locale.Qt(mf.Tag))
	for _, key := range sortLikeSource(flat) {
		if err := c.Add(entities.Entry{Source: key, Translation: flat[key]}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// sortLikeSource returns the keys of flat in the order the source catalog
// lists them. Keys it does not know go last, alphabetically.
func sortLikeSource(flat map[string]string) []string {
	pos := make(map[string]int)
	for i, k := range entities.SourceCatalog().Keys() {
		pos[k] = i
	}
	rank := func(id string) int {
		if p, ok := pos[id]; ok {
			return p
		}
		return len(pos)
	}
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Encode renders c in format f. Flat formats only keep usable translations.
func Encode(c *entities.Catalog, f Format) ([]byte, error) {
	if f == FormatTS {
		var buf bytes.Buffer
		if err := linguist.Encode(&buf, c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	flat := make(map[string]string, c.Len())
	for _, e := range c.Entries() {
		if e.Usable() {
			flat[e.Source] = e.Translation
		}
	}
	switch f {
	case FormatTOML:
		return toml.Marshal(flat)
	case FormatYAML:
		return yaml.Marshal(flat)
	case FormatJSON:
		return json.MarshalIndent(flat, "", "  ")
	}
	return nil, fmt.Errorf("i18n: unsupported format %q", f)
}
