// Package static serves catalogs from YAML fixtures compiled into the binary.
package static

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"localbiz/internal/domain"
)

//go:embed data/*.yaml
var fixtures embed.FS

type Source struct {
	fs embed.FS
}

func New() *Source { return &Source{fs: fixtures} }

// Load decodes data/<kind>.yaml into the kind's type and re-encodes each entry
// as JSON. Unknown YAML keys are an error so fixture typos surface at startup.
func (s *Source) Load(ctx context.Context, kind domain.Kind) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := s.fs.ReadFile("data/" + string(kind) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCatalog, kind)
	}
	switch kind {
	case domain.KindHotels:
		return decode[domain.Hotel](b)
	case domain.KindRestaurants:
		return decode[domain.Restaurant](b)
	case domain.KindBars:
		return decode[domain.Bar](b)
	case domain.KindCafes:
		return decode[domain.Cafe](b)
	case domain.KindStreetFood:
		return decode[domain.StreetFood](b)
	case domain.KindEcoLodges:
		return decode[domain.EcoLodge](b)
	case domain.KindRentals:
		return decode[domain.Rental](b)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCatalog, kind)
}

func decode[T any](b []byte) ([]json.RawMessage, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var items []T
	if err := dec.Decode(&items); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	out := make([]json.RawMessage, 0, len(items))
	for i := range items {
		doc, err := json.Marshal(&items[i])
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}
