package domain

import "errors"

// Domain errors.
var (
	ErrUnknownKey      = errors.New("key is not part of the source catalog")
	ErrDuplicateKey    = errors.New("key has more than one translation")
	ErrUnknownLocale   = errors.New("unknown locale")
	ErrInvalidCatalog  = errors.New("invalid catalog")
	ErrCatalogNotFound = errors.New("catalog not found")
)
