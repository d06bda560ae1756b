// Package catalog holds the search/filter/sort engine shared by every catalog kind.
// The engine never touches variant fields directly; each kind plugs in a Strategy.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"localbiz/internal/domain"
)

// All is the facet value that disables a filter.
const All = "all"

// Query is a conjunction of facets. Zero values disable a facet.
type Query struct {
	Text       string
	Category   string
	Atmosphere string
	PriceRange string
	Dietary    []domain.Dietary
	Amenities  []string
}

// Strategy carries the four hooks a catalog kind supplies.
// Nil Name/Description fall back to the plain localized fields;
// nil matchers match nothing.
type Strategy[T domain.Entity] struct {
	Name              func(e T, loc domain.Locale) string
	Description       func(e T, loc domain.Locale) string
	MatchesCategory   func(e T, category string) bool
	MatchesAtmosphere func(e T, atmosphere string) bool
}

func (s Strategy[T]) withDefaults() Strategy[T] {
	if s.Name == nil {
		s.Name = func(e T, loc domain.Locale) string { return domain.GetName(e, loc) }
	}
	if s.Description == nil {
		s.Description = func(e T, loc domain.Locale) string { return domain.GetDescription(e, loc) }
	}
	if s.MatchesCategory == nil {
		s.MatchesCategory = func(T, string) bool { return false }
	}
	if s.MatchesAtmosphere == nil {
		s.MatchesAtmosphere = func(T, string) bool { return false }
	}
	return s
}

// Engine evaluates queries over an immutable snapshot. Safe for concurrent use.
type Engine[T domain.Entity] struct {
	items  []T
	byID   map[string]int
	bySlug map[string]int
	st     Strategy[T]
}

// New copies items into a snapshot. Duplicate ids or slugs are rejected.
func New[T domain.Entity](items []T, st Strategy[T]) (*Engine[T], error) {
	e := &Engine[T]{
		items:  make([]T, len(items)),
		byID:   make(map[string]int, len(items)),
		bySlug: make(map[string]int, len(items)),
		st:     st.withDefaults(),
	}
	copy(e.items, items)
	for i, it := range e.items {
		c := it.Common()
		if _, dup := e.byID[c.ID]; dup {
			return nil, fmt.Errorf("id %q: %w", c.ID, domain.ErrDuplicateKey)
		}
		if _, dup := e.bySlug[c.Slug]; dup {
			return nil, fmt.Errorf("slug %q: %w", c.Slug, domain.ErrDuplicateKey)
		}
		e.byID[c.ID] = i
		e.bySlug[c.Slug] = i
	}
	return e, nil
}

func (e *Engine[T]) Len() int { return len(e.items) }

// All returns every entity in snapshot order.
func (e *Engine[T]) All() []T {
	out := make([]T, len(e.items))
	copy(out, e.items)
	return out
}

func (e *Engine[T]) ByID(id string) (T, bool) {
	i, ok := e.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return e.items[i], true
}

func (e *Engine[T]) BySlug(slug string) (T, bool) {
	i, ok := e.bySlug[slug]
	if !ok {
		var zero T
		return zero, false
	}
	return e.items[i], true
}

// Featured returns featured entities in snapshot order.
func (e *Engine[T]) Featured() []T {
	out := make([]T, 0)
	for _, it := range e.items {
		if it.Common().Featured {
			out = append(out, it)
		}
	}
	return out
}

// Search returns the entities satisfying every active facet, in snapshot order.
func (e *Engine[T]) Search(q Query) []T {
	m := e.matcher(q)
	out := make([]T, 0, len(e.items))
	for _, it := range e.items {
		if m(it) {
			out = append(out, it)
		}
	}
	return out
}

// Sort orders items with the engine's name extractor. See Sort.
func (e *Engine[T]) Sort(items []T, by SortBy, loc domain.Locale) ([]T, error) {
	return Sort(items, by, loc, e.st.Name)
}

func (e *Engine[T]) SearchAndSort(q Query, by SortBy, loc domain.Locale) ([]T, error) {
	return e.Sort(e.Search(q), by, loc)
}

func active(facet string) bool {
	return facet != "" && facet != All
}

func (e *Engine[T]) matcher(q Query) func(T) bool {
	fold := cases.Fold()
	text := fold.String(strings.TrimSpace(q.Text))

	// The placeholder stands in for missing text and is never matched.
	contains := func(s string) bool {
		return s != domain.NotAvailable && strings.Contains(fold.String(s), text)
	}

	return func(it T) bool {
		c := it.Common()
		if text != "" {
			hit := false
			for _, loc := range domain.Locales {
				if contains(e.st.Name(it, loc)) || contains(e.st.Description(it, loc)) {
					hit = true
					break
				}
			}
			if !hit {
				return false
			}
		}
		if active(q.Category) && !e.st.MatchesCategory(it, q.Category) {
			return false
		}
		if active(q.Atmosphere) && !e.st.MatchesAtmosphere(it, q.Atmosphere) {
			return false
		}
		if active(q.PriceRange) && string(c.PriceRange) != q.PriceRange {
			return false
		}
		if len(q.Dietary) > 0 && !c.HasDietary(q.Dietary) {
			return false
		}
		if len(q.Amenities) > 0 && !c.HasAmenities(q.Amenities) {
			return false
		}
		return true
	}
}
