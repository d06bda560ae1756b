package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrUnknownPriceRange = errors.New("unknown price range")
	ErrUnknownCatalog    = errors.New("unknown catalog")
	ErrDuplicateKey      = errors.New("duplicate id or slug")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
)
