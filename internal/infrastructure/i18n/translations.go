package i18n

import (
	"context"
	"embed"
	"fmt"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/nicksnyder/go-i18n/v2/i18n/template"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"razertr/internal/domain"
	"razertr/internal/domain/entities"
	"razertr/internal/ports/output"
	"razertr/pkg/locale"
)

//go:embed translations/*.ts
var localeFS embed.FS

// Ensure Translator implements the output.Localizer port.
var _ output.Localizer = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
//
// The bundle's default language is always the source language, so any key
// a locale does not translate resolves to its English source string. A
// Translator never changes after NewTranslator returns.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	source          *entities.Catalog
	catalogs        map[string]*entities.Catalog
	locales         []string
}

// NewTranslator builds a Translator from the source catalog and the given
// locale catalogs. defaultLocale (e.g. "de") is used when a caller passes
// an empty locale.
func NewTranslator(defaultLocale string, catalogs ...*entities.Catalog) (*Translator, error) {
	tag, err := locale.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	source := entities.SourceCatalog()
	bundle := i18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English, messages(source)...); err != nil {
		return nil, fmt.Errorf("i18n: register source catalog: %w", err)
	}

	t := &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		source:          source,
		catalogs:        make(map[string]*entities.Catalog, len(catalogs)),
	}
	for _, c := range catalogs {
		ctag, err := locale.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: catalog %q: %v", domain.ErrUnknownLocale, c.Locale, err)
		}
		if _, dup := t.catalogs[ctag.String()]; dup {
			return nil, fmt.Errorf("%w: more than one catalog for %s", domain.ErrInvalidCatalog, c.Locale)
		}
		if err := bundle.AddMessages(ctag, messages(c)...); err != nil {
			return nil, fmt.Errorf("i18n: register %s: %w", c.Locale, err)
		}
		t.catalogs[ctag.String()] = c
		t.locales = append(t.locales, c.Locale)
	}
	sort.Strings(t.locales)
	return t, nil
}

// Load builds a Translator from every catalog src yields.
func Load(ctx context.Context, src output.CatalogSource, defaultLocale string) (*Translator, error) {
	catalogs, err := src.Catalogs(ctx)
	if err != nil {
		return nil, err
	}
	return NewTranslator(defaultLocale, catalogs...)
}

func messages(c *entities.Catalog) []*i18n.Message {
	var out []*i18n.Message
	for _, e := range c.Entries() {
		if !e.Usable() {
			continue
		}
		out = append(out, &i18n.Message{
			ID:          e.Source,
			Description: e.Comment,
			Other:       e.Translation,
		})
	}
	return out
}

// Localize returns the translation of key, the English source string when
// locale lacks one, and domain.ErrUnknownKey for keys the source catalog
// does not have.
func (t *Translator) Localize(locale, key string) (string, error) {
	if _, ok := t.source.Entry(key); !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownKey, key)
	}
	localizer := i18n.NewLocalizer(t.bundle, t.languages(locale)...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      key,
		// catalog text is shown as written, never executed as a template
		TemplateParser: template.IdentityParser{},
	})
	if err != nil || msg == "" {
		zap.L().Warn("i18n: source fallback", zap.String("key", key), zap.String("locale", locale), zap.Error(err))
		return key, nil
	}
	return msg, nil
}

func (t *Translator) languages(loc string) []string {
	if loc == "" {
		return []string{t.defaultLanguage.String()}
	}
	if tag, err := locale.Parse(loc); err == nil {
		return []string{tag.String()}
	}
	return []string{loc}
}

func (t *Translator) Locales() []string {
	return append([]string(nil), t.locales...)
}

// Catalog returns the catalog registered for loc. "nl_NL" and "nl-NL" name
// the same catalog, "nl" does not; matching happens in Localize only.
func (t *Translator) Catalog(loc string) (*entities.Catalog, bool) {
	tag, err := locale.Parse(loc)
	if err != nil {
		return nil, false
	}
	c, ok := t.catalogs[tag.String()]
	return c, ok
}

// Source returns the English catalog keys are checked against.
func (t *Translator) Source() *entities.Catalog {
	return t.source
}
