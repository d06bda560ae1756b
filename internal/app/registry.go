package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"localbiz/internal/domain"
)

// Catalogs owns one service per kind. Build it once at startup and pass it to
// whoever needs to read or refresh catalogs.
type Catalogs struct {
	Hotels      *Service[*domain.Hotel]
	Restaurants *Service[*domain.Restaurant]
	Bars        *BarService
	Cafes       *Service[*domain.Cafe]
	StreetFood  *StreetFoodService
	EcoLodges   *Service[*domain.EcoLodge]
	Rentals     *RentalService

	// OnRefresh, when set, is called after each successful per-kind refresh.
	OnRefresh func(kind domain.Kind, items int)

	byKind map[domain.Kind]Browser
}

func NewCatalogs(src domain.Source, cache domain.Cache, ttl time.Duration) *Catalogs {
	c := &Catalogs{
		Hotels:      NewHotels(src, cache, ttl),
		Restaurants: NewRestaurants(src, cache, ttl),
		Bars:        NewBars(src, cache, ttl),
		Cafes:       NewCafes(src, cache, ttl),
		StreetFood:  NewStreetFood(src, cache, ttl),
		EcoLodges:   NewEcoLodges(src, cache, ttl),
		Rentals:     NewRentals(src, cache, ttl),
	}
	c.byKind = map[domain.Kind]Browser{
		domain.KindHotels:      c.Hotels,
		domain.KindRestaurants: c.Restaurants,
		domain.KindBars:        c.Bars,
		domain.KindCafes:       c.Cafes,
		domain.KindStreetFood:  c.StreetFood,
		domain.KindEcoLodges:   c.EcoLodges,
		domain.KindRentals:     c.Rentals,
	}
	return c
}

func (c *Catalogs) Lookup(kind domain.Kind) (Browser, bool) {
	b, ok := c.byKind[kind]
	return b, ok
}

// LookupName resolves a kind from its wire name.
func (c *Catalogs) LookupName(name string) (Browser, error) {
	k, ok := domain.ParseKind(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCatalog, name)
	}
	b, _ := c.Lookup(k)
	return b, nil
}

// Browsers returns every catalog in domain.Kinds order.
func (c *Catalogs) Browsers() []Browser {
	out := make([]Browser, 0, len(domain.Kinds))
	for _, k := range domain.Kinds {
		out = append(out, c.byKind[k])
	}
	return out
}

// RefreshAll reloads every catalog. A failing kind keeps serving its previous
// snapshot; the errors are joined.
func (c *Catalogs) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, b := range c.Browsers() {
		if err := b.Refresh(ctx); err != nil {
			log.Error().Err(err).Str("kind", string(b.Kind())).Msg("catalog refresh failed")
			errs = append(errs, err)
			continue
		}
		if c.OnRefresh != nil {
			c.OnRefresh(b.Kind(), b.Len())
		}
	}
	return errors.Join(errs...)
}

// Run refreshes all catalogs every interval until ctx is done.
func (c *Catalogs) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_ = c.RefreshAll(ctx)
		}
	}
}
