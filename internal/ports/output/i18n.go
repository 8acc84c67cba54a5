package output

import "razertr/internal/domain/entities"

// Localizer resolves catalog keys for the lookup use case.
type Localizer interface {
	// Localize returns the translation of key in locale, or the source
	// string when locale has none. Keys unknown to the source catalog
	// fail with domain.ErrUnknownKey.
	Localize(locale, key string) (string, error)

	// Locales lists the locales that have a catalog, as written in their
	// resources.
	Locales() []string

	// Catalog returns the catalog loaded for locale.
	Catalog(locale string) (*entities.Catalog, bool)
}
