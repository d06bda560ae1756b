package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localbiz/internal/catalog"
	"localbiz/internal/domain"
)

func named(id, es, en string) *domain.Hotel {
	h := hotel(id, domain.HotelBudget, domain.PriceBudget, false, 4)
	h.Name = domain.LocalizedText{domain.LocaleES: es, domain.LocaleEN: en}
	return h
}

func TestSort_FeaturedComposite(t *testing.T) {
	a := hotel("A", domain.HotelLuxury, domain.PriceLuxury, true, 3.0)
	b := hotel("B", domain.HotelLuxury, domain.PriceLuxury, true, 4.5)
	c := hotel("C", domain.HotelLuxury, domain.PriceLuxury, false, 5.0)

	got, err := catalog.Sort([]*domain.Hotel{a, b, c}, catalog.SortFeatured, domain.LocaleEN, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, ids(got))
}

func TestSort_FeaturedLeavesNonFeaturedOrder(t *testing.T) {
	low := hotel("low", domain.HotelBudget, domain.PriceBudget, false, 1.0)
	high := hotel("high", domain.HotelBudget, domain.PriceBudget, false, 5.0)
	feat := hotel("feat", domain.HotelBudget, domain.PriceBudget, true, 2.0)

	got, err := catalog.Sort([]*domain.Hotel{low, high, feat}, catalog.SortFeatured, domain.LocaleEN, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"feat", "low", "high"}, ids(got))
}

func TestSort_Price(t *testing.T) {
	in := []*domain.Hotel{
		hotel("3", domain.HotelBudget, domain.PriceExpensive, false, 4),
		hotel("1", domain.HotelBudget, domain.PriceBudget, false, 4),
		hotel("4", domain.HotelBudget, domain.PriceLuxury, false, 4),
		hotel("2", domain.HotelBudget, domain.PriceModerate, false, 4),
	}
	got, err := catalog.Sort(in, catalog.SortPrice, domain.LocaleEN, nil)
	require.NoError(t, err)

	var tiers []domain.PriceRange
	for _, h := range got {
		tiers = append(tiers, h.PriceRange)
	}
	assert.Equal(t, []domain.PriceRange{"$", "$$", "$$$", "$$$$"}, tiers)
	assert.Equal(t, []string{"3", "1", "4", "2"}, ids(in), "input must stay untouched")
}

func TestSort_PriceFailsOnUnknownTier(t *testing.T) {
	bad := hotel("bad", domain.HotelBudget, "cheap", false, 4)
	_, err := catalog.Sort([]*domain.Hotel{hotel("ok", domain.HotelBudget, domain.PriceBudget, false, 4), bad},
		catalog.SortPrice, domain.LocaleEN, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownPriceRange)
}

func TestSort_Rating(t *testing.T) {
	in := []*domain.Hotel{
		hotel("a", domain.HotelBudget, domain.PriceBudget, false, 3.5),
		hotel("b", domain.HotelBudget, domain.PriceBudget, false, 4.8),
		hotel("c", domain.HotelBudget, domain.PriceBudget, false, 4.1),
	}
	got, err := catalog.Sort(in, catalog.SortRating, domain.LocaleEN, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(got))
}

func TestSort_NameUsesLocaleAndCollation(t *testing.T) {
	in := []*domain.Hotel{
		named("1", "Ñandú", "Zebra Inn"),
		named("2", "Nube", "apple Lodge"),
		named("3", "Oasis", "Mango"),
	}

	es, err := catalog.Sort(in, catalog.SortName, domain.LocaleES, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "3"}, ids(es))

	en, err := catalog.Sort(in, catalog.SortName, domain.LocaleEN, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "1"}, ids(en))
}

func TestSort_NameUsesExtractor(t *testing.T) {
	in := []*domain.Hotel{named("1", "B", "B"), named("2", "A", "A")}
	byID := func(h *domain.Hotel, _ domain.Locale) string { return h.ID }

	got, err := catalog.Sort(in, catalog.SortName, domain.LocaleEN, byID)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	in := []*domain.Hotel{
		hotel("b", domain.HotelBudget, domain.PriceLuxury, false, 1),
		hotel("a", domain.HotelBudget, domain.PriceBudget, true, 5),
	}
	got, err := catalog.Sort(in, "distance", domain.LocaleEN, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(got))
	assert.False(t, catalog.SortBy("distance").Known())
	assert.True(t, catalog.SortName.Known())
}

func TestSort_StableForEveryKey(t *testing.T) {
	mk := func(id string) *domain.Hotel {
		h := hotel(id, domain.HotelBudget, domain.PriceModerate, true, 4.2)
		h.Name = domain.LocalizedText{domain.LocaleES: "Mismo", domain.LocaleEN: "Same"}
		return h
	}
	in := []*domain.Hotel{mk("first"), mk("second"), mk("third")}

	for _, by := range []catalog.SortBy{catalog.SortFeatured, catalog.SortRating, catalog.SortPrice, catalog.SortName} {
		t.Run(string(by), func(t *testing.T) {
			got, err := catalog.Sort(in, by, domain.LocaleES, nil)
			require.NoError(t, err)
			assert.Equal(t, []string{"first", "second", "third"}, ids(got))
		})
	}
}
