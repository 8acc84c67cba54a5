package application

import (
	"errors"
	"fmt"

	"razertr/internal/domain"
	"razertr/internal/domain/entities"
	"razertr/internal/ports/input"
	"razertr/internal/ports/output"
)

var _ input.LookupUseCase = (*CatalogService)(nil)

type CatalogService struct {
	localizer output.Localizer
	source    *entities.Catalog
}

func NewCatalogService(localizer output.Localizer) *CatalogService {
	return &CatalogService{
		localizer: localizer,
		source:    entities.SourceCatalog(),
	}
}

// Lookup returns the display string of key in locale. Only keys missing
// from the source catalog are errors; missing translations fall back to the
// English source string.
func (s *CatalogService) Lookup(key, locale string) (string, error) {
	if _, ok := s.source.Entry(key); !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownKey, key)
	}
	return s.localizer.Localize(locale, key)
}

// MustLookup is Lookup for keys compiled into the program. An unknown key
// means the resources and the code disagree, so it panics.
func (s *CatalogService) MustLookup(key, locale string) string {
	v, err := s.Lookup(key, locale)
	if err != nil {
		panic(err)
	}
	return v
}

func (s *CatalogService) EffectName(effect entities.Effect, locale string) string {
	label := effect.Label()
	if label == "" {
		return ""
	}
	return s.MustLookup(label, locale)
}

func (s *CatalogService) LedName(id entities.LedID, locale string) string {
	return s.MustLookup(id.Label(), locale)
}

func (s *CatalogService) ChargingName(state entities.ChargingState, locale string) string {
	label := state.Label()
	if label == "" {
		return ""
	}
	return s.MustLookup(label, locale)
}

// Coverage compares the catalog of locale with the source catalog.
func (s *CatalogService) Coverage(locale string) (input.Coverage, error) {
	c, ok := s.localizer.Catalog(locale)
	if !ok {
		return input.Coverage{}, fmt.Errorf("%w: %s", domain.ErrUnknownLocale, locale)
	}
	cov := input.Coverage{Locale: c.Locale}
	for _, key := range s.source.Keys() {
		if _, ok := c.Translation(key); ok {
			cov.Translated = append(cov.Translated, key)
		} else {
			cov.Missing = append(cov.Missing, key)
		}
	}
	for _, key := range c.Keys() {
		if _, ok := s.source.Entry(key); !ok {
			cov.Obsolete = append(cov.Obsolete, key)
		}
	}
	return cov, nil
}

// CoverageAll reports on every loaded locale.
func (s *CatalogService) CoverageAll() ([]input.Coverage, error) {
	var out []input.Coverage
	var errs []error
	for _, loc := range s.localizer.Locales() {
		cov, err := s.Coverage(loc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, cov)
	}
	return out, errors.Join(errs...)
}

func (s *CatalogService) Locales() []string {
	return s.localizer.Locales()
}

// SourceKeys lists every key the program may look up.
func (s *CatalogService) SourceKeys() []string {
	return s.source.Keys()
}
