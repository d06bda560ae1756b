package app

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"

	"localbiz/internal/domain"
)

//go:embed schema/listing.json
var listingSchemaJSON []byte

var listingSchema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(listingSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("listing schema: %v", err))
	}
	return s
}()

// IngestReport summarises one kind's ingestion.
type IngestReport struct {
	Kind     domain.Kind
	Fetched  int
	Stored   int
	Rejected int
}

type IngestionService struct {
	feed domain.FeedClient
	repo domain.ListingRepository
}

func NewIngestionService(f domain.FeedClient, r domain.ListingRepository) *IngestionService {
	return &IngestionService{feed: f, repo: r}
}

// IngestKind pulls kind from the feed, validates every document and replaces the
// stored catalog with the valid ones, so an empty or fully rejected feed clears
// the kind. A missing or forbidden feed is recorded as a reject, not an error,
// and leaves the stored catalog untouched.
func (s *IngestionService) IngestKind(ctx context.Context, kind domain.Kind) (IngestReport, error) {
	rep := IngestReport{Kind: kind}
	logger := log.Ctx(ctx) // carries the run id when set by the caller

	docs, err := s.feed.GetCatalog(ctx, kind)
	if err != nil {
		var reason string
		switch {
		case errors.Is(err, domain.ErrNotFound):
			reason = "feed: not found"
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
			reason = "feed: " + err.Error()
		default:
			return rep, fmt.Errorf("fetch %s: %w", kind, err)
		}
		logger.Warn().Err(err).Str("kind", string(kind)).Msg("feed unavailable, stored catalog kept")
		if err := s.repo.LogReject(ctx, kind, "", reason); err != nil {
			return rep, fmt.Errorf("log reject: %w", err)
		}
		return rep, nil
	}
	rep.Fetched = len(docs)

	listings := make([]domain.Listing, 0, len(docs))
	ids := make(map[string]struct{}, len(docs))
	slugs := make(map[string]struct{}, len(docs))
	for i, doc := range docs {
		l, reason := validateListing(kind, doc)
		if reason == "" {
			if _, dup := ids[l.ID]; dup {
				reason = "duplicate id"
			} else if _, dup := slugs[l.Slug]; dup {
				reason = "duplicate slug"
			}
		}
		if reason != "" {
			rep.Rejected++
			logger.Warn().Str("kind", string(kind)).Int("index", i).Str("id", l.ID).Str("reason", reason).Msg("listing rejected")
			if err := s.repo.LogReject(ctx, kind, l.ID, reason); err != nil {
				return rep, fmt.Errorf("log reject: %w", err)
			}
			continue
		}
		ids[l.ID], slugs[l.Slug] = struct{}{}, struct{}{}
		listings = append(listings, l)
	}

	if err := s.repo.UpsertListings(ctx, kind, listings); err != nil {
		return rep, fmt.Errorf("upsert %s: %w", kind, err)
	}
	rep.Stored = len(listings)
	logger.Info().Str("kind", string(kind)).Int("fetched", rep.Fetched).Int("stored", rep.Stored).Int("rejected", rep.Rejected).Msg("kind ingested")
	return rep, nil
}

// validateListing checks doc against the listing schema. An empty reason means
// the listing is valid.
func validateListing(kind domain.Kind, doc json.RawMessage) (domain.Listing, string) {
	var keys struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	}
	_ = json.Unmarshal(doc, &keys)
	l := domain.Listing{Kind: kind, ID: keys.ID, Slug: keys.Slug, Payload: doc}

	res, err := listingSchema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return l, "malformed: " + err.Error()
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return l, strings.Join(msgs, "; ")
	}
	return l, ""
}
