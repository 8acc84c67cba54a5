package input

import "razertr/internal/domain/entities"

type LookupUseCase interface {
	Lookup(key, locale string) (string, error)
	EffectName(effect entities.Effect, locale string) string
	LedName(id entities.LedID, locale string) string
	ChargingName(state entities.ChargingState, locale string) string
	Coverage(locale string) (Coverage, error)
	Locales() []string
}

// Coverage summarizes how much of the source catalog a locale translates.
type Coverage struct {
	Locale     string
	Translated []string
	Missing    []string
	// Obsolete keys are present in the resource but not in the source
	// catalog; the resource file is stale.
	Obsolete []string
}

func (c Coverage) Complete() bool {
	return len(c.Missing) == 0 && len(c.Obsolete) == 0
}
