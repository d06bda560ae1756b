package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"localbiz/internal/adapters/observability"
	"localbiz/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("feed API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// GetCatalog fetches every listing of kind, one raw JSON document per entity.
// The feed may answer with a bare array or with {"items": [...]}.
func (c *Client) GetCatalog(ctx context.Context, kind domain.Kind) ([]json.RawMessage, error) {
	candidates := []string{
		fmt.Sprintf("%s/catalogs/%s", c.base, kind), // preferred
		fmt.Sprintf("%s/%s", c.base, kind),          // legacy
	}
	var raw json.RawMessage
	if err := c.getFirst(ctx, candidates, &raw); err != nil {
		return nil, err
	}
	return splitDocuments(raw)
}

func splitDocuments(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var docs []json.RawMessage
	if trimmed[0] == '{' {
		var env struct {
			Items []json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode feed envelope: %w", err)
		}
		return env.Items, nil
	}
	if err := json.Unmarshal(trimmed, &docs); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return docs, nil
}

// ---- Internals ----

var (
	ErrNotFound     = fmt.Errorf("feed: %w", domain.ErrNotFound)
	ErrUnauthorized = fmt.Errorf("feed: %w", domain.ErrUnauthorized)
	ErrForbidden    = fmt.Errorf("feed: %w", domain.ErrForbidden)
)

func (c *Client) getFirst(ctx context.Context, urls []string, out any) error {
	var last error
	for _, u := range urls {
		if err := c.get(ctx, u, out); err != nil {
			if errors.Is(err, ErrNotFound) {
				last = err
				continue
			}
			return err
		}
		return nil
	}
	if last != nil {
		return last
	}
	return errors.New("no candidate URL succeeded")
}

// get is a rate-limited GET decoding JSON into out. Transport errors, 429 and
// transient 5xx are retried up to three times with jittered exponential
// backoff; a Retry-After header is waited out before the next attempt.
func (c *Client) get(ctx context.Context, url string, out any) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.Multiplier = 2
	policy.RandomizationFactor = 0.5
	policy.MaxElapsedTime = 0
	policy.Reset()

	return backoff.Retry(func() error {
		return c.attempt(ctx, url, out)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, 3), ctx))
}

// attempt performs one request. Errors wrapped in backoff.Permanent end the retry loop.
func (c *Client) attempt(ctx context.Context, url string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return backoff.Permanent(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("X-API-Key", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "localbiz-ingestor/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	observe(resp, err, time.Since(start))
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode %s: %w", url, err))
		}
		return nil
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return backoff.Permanent(ErrNotFound)
	case http.StatusUnauthorized:
		return backoff.Permanent(ErrUnauthorized)
	case http.StatusForbidden:
		return backoff.Permanent(ErrForbidden)
	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		if !sleepCtx(ctx, retryAfter(resp)) {
			return backoff.Permanent(ctx.Err())
		}
		return fmt.Errorf("remote %d", resp.StatusCode)
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return backoff.Permanent(fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b))))
	}
}

// observe records one upstream attempt; status 0 means no response.
func observe(resp *http.Response, err error, d time.Duration) {
	status := 0
	if err == nil {
		status = resp.StatusCode
	}
	observability.ObserveExternal("feed", "catalog", status, d)
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter reads Retry-After in seconds or HTTP-date form; 0 when absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
