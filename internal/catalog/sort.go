package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"localbiz/internal/domain"
)

// SortBy selects an ordering. Unknown values leave the input order untouched.
type SortBy string

const (
	SortFeatured SortBy = "featured"
	SortRating   SortBy = "rating"
	SortPrice    SortBy = "price"
	SortName     SortBy = "name"
)

var sortKeys = []SortBy{SortFeatured, SortRating, SortPrice, SortName}

func (s SortBy) Known() bool { return slices.Contains(sortKeys, s) }

func SortKeys() []SortBy { return slices.Clone(sortKeys) }

// Sort returns a stably sorted copy of items; the input slice is not modified.
//
//   - featured: featured first; featured entries by descending rating,
//     non-featured entries keep their input order
//   - rating: descending rating
//   - price: ascending tier; an entity with an unknown tier yields ErrUnknownPriceRange
//   - name: ascending, collated for loc, using name to extract the display name
func Sort[T domain.Entity](items []T, by SortBy, loc domain.Locale, name func(T, domain.Locale) string) ([]T, error) {
	out := slices.Clone(items)
	switch by {
	case SortFeatured:
		slices.SortStableFunc(out, func(a, b T) int {
			ca, cb := a.Common(), b.Common()
			switch {
			case ca.Featured && !cb.Featured:
				return -1
			case !ca.Featured && cb.Featured:
				return 1
			case ca.Featured:
				return cmp.Compare(cb.Rating, ca.Rating)
			}
			return 0
		})

	case SortRating:
		slices.SortStableFunc(out, func(a, b T) int {
			return cmp.Compare(b.Common().Rating, a.Common().Rating)
		})

	case SortPrice:
		ranks := make(map[*domain.BusinessEntity]int, len(out))
		for _, it := range out {
			c := it.Common()
			r, ok := c.PriceRange.Rank()
			if !ok {
				return nil, fmt.Errorf("entity %q has price range %q: %w", c.ID, c.PriceRange, domain.ErrUnknownPriceRange)
			}
			ranks[c] = r
		}
		slices.SortStableFunc(out, func(a, b T) int {
			return cmp.Compare(ranks[a.Common()], ranks[b.Common()])
		})

	case SortName:
		if name == nil {
			name = func(e T, l domain.Locale) string { return domain.GetName(e, l) }
		}
		col := collate.New(collationTag(loc))
		keys := make(map[*domain.BusinessEntity]string, len(out))
		for _, it := range out {
			keys[it.Common()] = name(it, loc)
		}
		slices.SortStableFunc(out, func(a, b T) int {
			return col.CompareString(keys[a.Common()], keys[b.Common()])
		})
	}
	return out, nil
}

func collationTag(loc domain.Locale) language.Tag {
	if loc == domain.LocaleES {
		return language.Spanish
	}
	return language.English
}
