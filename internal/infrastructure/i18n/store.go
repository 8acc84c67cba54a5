package i18n

import (
	"sync/atomic"

	"razertr/internal/domain/entities"
	"razertr/internal/ports/output"
)

var _ output.Localizer = (*Store)(nil)

// Store hands out the current Translator. Reloads replace it as a whole, so
// a reader sees either the old catalogs or the new ones, never a mix.
type Store struct {
	current atomic.Pointer[Translator]
}

func NewStore(t *Translator) *Store {
	s := &Store{}
	s.current.Store(t)
	return s
}

func (s *Store) Translator() *Translator {
	return s.current.Load()
}

// Swap installs t and returns the Translator it replaced.
func (s *Store) Swap(t *Translator) *Translator {
	return s.current.Swap(t)
}

func (s *Store) Localize(locale, key string) (string, error) {
	return s.Translator().Localize(locale, key)
}

func (s *Store) Locales() []string {
	return s.Translator().Locales()
}

func (s *Store) Catalog(locale string) (*entities.Catalog, bool) {
	return s.Translator().Catalog(locale)
}
