package app

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"localbiz/internal/catalog"
	"localbiz/internal/domain"
)

// Request is a search over one catalog. Drinks, LocalFavorite and Guests are
// only read by the kinds that define them.
type Request struct {
	Query  catalog.Query  `json:"query"`
	Sort   catalog.SortBy `json:"sort"`
	Locale domain.Locale  `json:"locale"`

	Drinks        []string `json:"drinks,omitempty"`
	LocalFavorite bool     `json:"localFavorite,omitempty"`
	Guests        int      `json:"guests,omitempty"`
}

// Browser is the kind-erased view the transport layer works with.
type Browser interface {
	Kind() domain.Kind
	Len() int
	Version() string
	Facets() Facets
	Refresh(ctx context.Context) error
	Find(ctx context.Context, r Request) (any, int, error)
	FindFeatured(loc domain.Locale) (any, int)
	FindBySlug(slug string) (any, bool)
	FindByID(id string) (any, bool)
}

type snapshot[T domain.Entity] struct {
	engine   *catalog.Engine[T]
	version  string
	loadedAt time.Time
}

// Service binds the query engine to one catalog kind. Queries run against the
// snapshot current at call time; Refresh swaps snapshots atomically.
type Service[T domain.Entity] struct {
	kind     domain.Kind
	strategy catalog.Strategy[T]
	refine   func(items []T, r Request) []T
	facets   Facets
	source   domain.Source
	cache    domain.Cache
	cacheTTL time.Duration
	snap     atomic.Pointer[snapshot[T]]
}

func newService[T domain.Entity](kind domain.Kind, st catalog.Strategy[T], src domain.Source, cache domain.Cache, ttl time.Duration) *Service[T] {
	s := &Service[T]{kind: kind, strategy: st, source: src, cache: cache, cacheTTL: ttl}
	empty, _ := catalog.New[T](nil, st)
	s.snap.Store(&snapshot[T]{engine: empty})
	return s
}

func (s *Service[T]) engine() *catalog.Engine[T] { return s.snap.Load().engine }

func (s *Service[T]) Kind() domain.Kind { return s.kind }
func (s *Service[T]) Len() int { return s.engine().Len() }
func (s *Service[T]) Version() string { return s.snap.Load().version }

// Refresh loads the catalog from the source. Documents that do not decode,
// carry an unknown price tier or repeat an id/slug are skipped. Cached results
// of the replaced version are purged.
func (s *Service[T]) Refresh(ctx context.Context) error {
	docs, err := s.source.Load(ctx, s.kind)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.kind, err)
	}

	h := sha1.New()
	items := make([]T, 0, len(docs))
	ids := make(map[string]struct{}, len(docs))
	slugs := make(map[string]struct{}, len(docs))
	for i, doc := range docs {
		var it T
		if trimmed := bytes.TrimSpace(doc); len(trimmed) == 0 || trimmed[0] != '{' {
			log.Warn().Str("kind", string(s.kind)).Int("index", i).Msg("skip non-object listing")
			continue
		}
		if err := json.Unmarshal(doc, &it); err != nil {
			log.Warn().Err(err).Str("kind", string(s.kind)).Int("index", i).Msg("skip undecodable listing")
			continue
		}
		c := it.Common()
		if !c.PriceRange.Valid() {
			log.Warn().Str("kind", string(s.kind)).Str("id", c.ID).Str("price", string(c.PriceRange)).Msg("skip listing with unknown price range")
			continue
		}
		_, dupID := ids[c.ID]
		_, dupSlug := slugs[c.Slug]
		if dupID || dupSlug {
			log.Warn().Str("kind", string(s.kind)).Str("id", c.ID).Str("slug", c.Slug).Msg("skip duplicate listing")
			continue
		}
		ids[c.ID], slugs[c.Slug] = struct{}{}, struct{}{}
		items = append(items, it)
		h.Write(doc)
	}

	eng, err := catalog.New(items, s.strategy)
	if err != nil {
		return fmt.Errorf("build %s: %w", s.kind, err)
	}
	version := hex.EncodeToString(h.Sum(nil))[:12]
	prev := s.snap.Swap(&snapshot[T]{engine: eng, version: version, loadedAt: time.Now()})
	if s.cache != nil && prev.version != "" && prev.version != version {
		if err := s.cache.Purge(ctx, s.cachePrefix(prev.version)); err != nil {
			log.Warn().Err(err).Str("kind", string(s.kind)).Msg("cache purge failed")
		}
	}

	log.Info().Str("kind", string(s.kind)).Int("items", eng.Len()).Str("version", version).Msg("catalog refreshed")
	return nil
}

// ---- typed entry points ----

func (s *Service[T]) All() []T { return s.engine().All() }
func (s *Service[T]) ByID(id string) (T, bool) { return s.engine().ByID(id) }
func (s *Service[T]) BySlug(slug string) (T, bool) { return s.engine().BySlug(slug) }
func (s *Service[T]) Featured() []T { return s.engine().Featured() }
func (s *Service[T]) Search(q catalog.Query) []T { return s.engine().Search(q) }

func (s *Service[T]) Sort(items []T, by catalog.SortBy, loc domain.Locale) ([]T, error) {
	return s.engine().Sort(items, by, loc)
}

func (s *Service[T]) SearchAndSort(q catalog.Query, by catalog.SortBy, loc domain.Locale) ([]T, error) {
	return s.engine().SearchAndSort(q, by, loc)
}

// Query runs the shared search, then the kind's own filters, then the sort.
// Results are cached per snapshot version.
func (s *Service[T]) Query(ctx context.Context, r Request) ([]T, error) {
	snap := s.snap.Load()
	key := s.cacheKey(snap.version, r)

	var out []T
	if s.cache != nil {
		if ok, err := s.cache.Get(ctx, key, &out); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if ok {
			return out, nil
		}
	}

	items := snap.engine.Search(r.Query)
	if s.refine != nil {
		items = s.refine(items, r)
	}
	out, err := snap.engine.Sort(items, r.Sort, r.Locale)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return out, nil
}

func (s *Service[T]) cacheKey(version string, r Request) string {
	b, _ := json.Marshal(r)
	sum := sha1.Sum(b)
	return s.cachePrefix(version) + hex.EncodeToString(sum[:])
}

func (s *Service[T]) cachePrefix(version string) string {
	return fmt.Sprintf("catalog:%s:%s:", s.kind, version)
}

// ---- Browser ----

func (s *Service[T]) Find(ctx context.Context, r Request) (any, int, error) {
	out, err := s.Query(ctx, r)
	return out, len(out), err
}

// FindFeatured returns featured listings, best rated first.
func (s *Service[T]) FindFeatured(loc domain.Locale) (any, int) {
	out, _ := s.Sort(s.Featured(), catalog.SortFeatured, loc)
	return out, len(out)
}

func (s *Service[T]) Facets() Facets { return s.facets }

func (s *Service[T]) FindBySlug(slug string) (any, bool) { return s.BySlug(slug) }
func (s *Service[T]) FindByID(id string) (any, bool) { return s.ByID(id) }
