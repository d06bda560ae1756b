package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"localbiz/internal/app"
	"localbiz/internal/domain"
)

func TestCatalogs_LookupAndRefreshAll(t *testing.T) {
	src := &fakeSource{docs: map[domain.Kind][]json.RawMessage{
		domain.KindHotels: docs(doc("h1", nil), doc("h2", nil)),
		domain.KindBars:   docs(doc("b1", nil)),
	}}
	c := app.NewCatalogs(src, nil, 0)

	sizes := map[domain.Kind]int{}
	c.OnRefresh = func(k domain.Kind, n int) { sizes[k] = n }

	if err := c.RefreshAll(context.Background()); err != nil {
		t.Fatalf("refresh all: %v", err)
	}
	if src.loads != len(domain.Kinds) {
		t.Fatalf("expected one load per kind, got %d", src.loads)
	}
	if sizes[domain.KindHotels] != 2 || sizes[domain.KindBars] != 1 || sizes[domain.KindRentals] != 0 {
		t.Fatalf("unexpected sizes: %v", sizes)
	}

	bs := c.Browsers()
	if len(bs) != len(domain.Kinds) {
		t.Fatalf("browsers: %d", len(bs))
	}
	for i, k := range domain.Kinds {
		if bs[i].Kind() != k {
			t.Fatalf("browser %d is %s, want %s", i, bs[i].Kind(), k)
		}
		if b, ok := c.Lookup(k); !ok || b.Kind() != k {
			t.Fatalf("lookup %s failed", k)
		}
	}

	if _, err := c.LookupName("spas"); !errors.Is(err, domain.ErrUnknownCatalog) {
		t.Fatalf("expected ErrUnknownCatalog, got %v", err)
	}
	if b, err := c.LookupName("street-food"); err != nil || b.Kind() != domain.KindStreetFood {
		t.Fatalf("lookup by name: %v", err)
	}
}

func TestCatalogs_RefreshAllJoinsErrors(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	c := app.NewCatalogs(src, nil, 0)

	err := c.RefreshAll(context.Background())
	if err == nil {
		t.Fatalf("expected an error")
	}
	if src.loads != len(domain.Kinds) {
		t.Fatalf("every kind should be attempted, got %d loads", src.loads)
	}
}

func TestCatalogs_RunStopsWithContext(t *testing.T) {
	c := app.NewCatalogs(&fakeSource{}, nil, 0)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx, 1<<30)
		close(done)
	}()
	cancel()
	<-done
}
