package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"localbiz/internal/adapters/observability"
	"localbiz/internal/app"
	"localbiz/internal/catalog"
	"localbiz/internal/domain"
)

type Handlers struct{ C *app.Catalogs }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type catalogInfo struct {
	Kind    domain.Kind `json:"kind"`
	Items   int         `json:"items"`
	Version string      `json:"version"`
}

type listResponse struct {
	Kind   domain.Kind   `json:"kind"`
	Locale domain.Locale `json:"locale"`
	Total  int           `json:"total"`
	Items  any           `json:"items"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1/catalogs", func(r chi.Router) {
		r.Get("/", h.listCatalogs)
		r.Route("/{kind}", func(r chi.Router) {
			r.Get("/", h.search)
			r.Get("/featured", h.featured)
			r.Get("/facets", h.facets)
			r.Get("/items/{slug}", h.bySlug)
			r.Get("/ids/{id}", h.byID)
		})
	})
}

// selectLocale prefers ?lang=, then the highest weighted supported
// Accept-Language tag, then English. Tags with q=0 are refused.
func selectLocale(r *http.Request) domain.Locale {
	if loc, ok := domain.ParseLocale(r.URL.Query().Get("lang")); ok {
		return loc
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil {
		return domain.LocaleEN
	}
	for _, tag := range tags {
		if loc, ok := domain.ParseLocale(tag.String()); ok {
			return loc
		}
	}
	return domain.LocaleEN
}

func csv(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseRequest maps query parameters onto an app.Request. Only malformed
// numbers and booleans are rejected; unknown facet values simply match nothing.
func parseRequest(r *http.Request) (app.Request, error) {
	q := r.URL.Query()
	req := app.Request{
		Query: catalog.Query{
			Text:       q.Get("q"),
			Category:   q.Get("category"),
			Atmosphere: q.Get("atmosphere"),
			PriceRange: q.Get("price"),
			Amenities:  csv(q.Get("amenities")),
		},
		Sort:   catalog.SortBy(q.Get("sort")),
		Locale: selectLocale(r),
		Drinks: csv(q.Get("drinks")),
	}
	for _, d := range csv(q.Get("dietary")) {
		req.Query.Dietary = append(req.Query.Dietary, domain.Dietary(d))
	}
	if v := q.Get("localFavorite"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, errors.New("localFavorite must be a boolean")
		}
		req.LocalFavorite = b
	}
	if v := q.Get("guests"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return req, errors.New("guests must be a non-negative integer")
		}
		req.Guests = n
	}
	return req, nil
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON answers 304 when the client already holds this body.
func writeJSON(w http.ResponseWriter, r *http.Request, loc domain.Locale, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "encoding failed")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	if loc != "" {
		w.Header().Set("Content-Language", string(loc))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func (h *Handlers) browser(w http.ResponseWriter, r *http.Request) (app.Browser, bool) {
	b, err := h.C.LookupName(chi.URLParam(r, "kind"))
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
		return nil, false
	}
	return b, true
}

func (h *Handlers) listCatalogs(w http.ResponseWriter, r *http.Request) {
	bs := h.C.Browsers()
	out := make([]catalogInfo, 0, len(bs))
	for _, b := range bs {
		out = append(out, catalogInfo{Kind: b.Kind(), Items: b.Len(), Version: b.Version()})
	}
	writeJSON(w, r, "", out)
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	b, ok := h.browser(w, r)
	if !ok {
		return
	}
	req, err := parseRequest(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	items, n, err := b.Find(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("kind", string(b.Kind())).Msg("catalog search failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "search failed")
		return
	}
	observability.ObserveSearch(string(b.Kind()), string(req.Sort), n)
	writeJSON(w, r, req.Locale, listResponse{Kind: b.Kind(), Locale: req.Locale, Total: n, Items: items})
}

func (h *Handlers) featured(w http.ResponseWriter, r *http.Request) {
	b, ok := h.browser(w, r)
	if !ok {
		return
	}
	loc := selectLocale(r)
	items, n := b.FindFeatured(loc)
	writeJSON(w, r, loc, listResponse{Kind: b.Kind(), Locale: loc, Total: n, Items: items})
}

func (h *Handlers) facets(w http.ResponseWriter, r *http.Request) {
	b, ok := h.browser(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, "", b.Facets())
}

func (h *Handlers) bySlug(w http.ResponseWriter, r *http.Request) {
	h.one(w, r, func(b app.Browser) (any, bool) { return b.FindBySlug(chi.URLParam(r, "slug")) })
}

func (h *Handlers) byID(w http.ResponseWriter, r *http.Request) {
	h.one(w, r, func(b app.Browser) (any, bool) { return b.FindByID(chi.URLParam(r, "id")) })
}

func (h *Handlers) one(w http.ResponseWriter, r *http.Request, find func(app.Browser) (any, bool)) {
	b, ok := h.browser(w, r)
	if !ok {
		return
	}
	item, ok := find(b)
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", string(b.Kind())+" listing not found")
		return
	}
	writeJSON(w, r, selectLocale(r), item)
}
