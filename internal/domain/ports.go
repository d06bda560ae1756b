package domain

import (
	"context"
	"encoding/json"
)

// Listing is one stored entity document of a catalog.
type Listing struct {
	Kind    Kind
	ID      string
	Slug    string
	Payload json.RawMessage
}

// Source hands out a read-only snapshot of one catalog, one JSON document per entity.
type Source interface {
	Load(ctx context.Context, kind Kind) ([]json.RawMessage, error)
}

type ListingRepository interface {
	Source

	// Write paths
	UpsertListings(ctx context.Context, kind Kind, ls []Listing) error
	LogReject(ctx context.Context, kind Kind, id, reason string) error
}

type FeedClient interface {
	GetCatalog(ctx context.Context, kind Kind) ([]json.RawMessage, error)
}

// Cache stores JSON-encoded values. Purge drops every key sharing a prefix.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Purge(ctx context.Context, prefix string) error
}
