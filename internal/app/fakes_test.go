package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"localbiz/internal/domain"
)

// ---- fakes ----

type fakeSource struct {
	docs  map[domain.Kind][]json.RawMessage
	err   error
	loads int
}

func (f *fakeSource) Load(ctx context.Context, kind domain.Kind) ([]json.RawMessage, error) {
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return f.docs[kind], nil
}

type fakeCache struct {
	store  map[string][]byte
	gets   int
	hits   int
	fail   bool
	purged []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.gets++
	if c.fail {
		return false, errors.New("cache down")
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.fail {
		return errors.New("cache down")
	}
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Purge(ctx context.Context, prefix string) error {
	c.purged = append(c.purged, prefix)
	for k := range c.store {
		if strings.HasPrefix(k, prefix) {
			delete(c.store, k)
		}
	}
	return nil
}

type fakeFeed struct {
	docs map[domain.Kind][]json.RawMessage
	errs map[domain.Kind]error
}

func (f *fakeFeed) GetCatalog(ctx context.Context, kind domain.Kind) ([]json.RawMessage, error) {
	if err := f.errs[kind]; err != nil {
		return nil, err
	}
	return f.docs[kind], nil
}

type reject struct {
	kind   domain.Kind
	id     string
	reason string
}

type fakeRepo struct {
	fakeSource
	upserted  map[domain.Kind][]domain.Listing
	upserts   map[domain.Kind]int
	rejects   []reject
	rejectErr error
}

func (r *fakeRepo) UpsertListings(ctx context.Context, kind domain.Kind, ls []domain.Listing) error {
	if r.upserted == nil {
		r.upserted = map[domain.Kind][]domain.Listing{}
		r.upserts = map[domain.Kind]int{}
	}
	r.upserts[kind]++
	r.upserted[kind] = append(r.upserted[kind], ls...)
	return nil
}

func (r *fakeRepo) LogReject(ctx context.Context, kind domain.Kind, id, reason string) error {
	if r.rejectErr != nil {
		return r.rejectErr
	}
	r.rejects = append(r.rejects, reject{kind, id, reason})
	return nil
}

// ---- fixtures ----

// doc builds a valid listing document and applies extra fields on top.
func doc(id string, extra map[string]any) json.RawMessage {
	m := map[string]any{
		"id":          id,
		"slug":        "slug-" + id,
		"name":        map[string]string{"es": "Nombre " + id, "en": "Name " + id},
		"description": map[string]string{"es": "Descripción " + id, "en": "Description " + id},
		"priceRange":  "$$",
		"rating":      4.0,
	}
	for k, v := range extra {
		m[k] = v
	}
	b, err := json.Marshal(m)
	if err != nil {
		panic(fmt.Sprintf("fixture %s: %v", id, err))
	}
	return b
}

func docs(ds ...json.RawMessage) []json.RawMessage { return ds }

func idsOf[T domain.Entity](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Common().ID)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
