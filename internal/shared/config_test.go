package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"localbiz/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"DATA_SOURCE", "REDIS_ADDR", "CACHE_TTL_SECONDS", "INGEST_WORKERS", "REFRESH_INTERVAL_SECONDS"} {
		t.Setenv(k, "")
	}
	c := shared.Load()

	assert.Equal(t, shared.SourceStatic, c.DataSource)
	assert.Empty(t, c.RedisAddr, "cache is off unless configured")
	assert.Equal(t, 15*time.Minute, c.CacheTTL)
	assert.Equal(t, 5*time.Minute, c.RefreshInterval)
	assert.Equal(t, 4, c.Workers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATA_SOURCE", "mysql")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CACHE_TTL_SECONDS", "30")
	t.Setenv("INGEST_WORKERS", "0")
	t.Setenv("FEED_RPS", "not-a-number")

	c := shared.Load()
	assert.Equal(t, shared.SourceMySQL, c.DataSource)
	assert.Equal(t, "redis:6379", c.RedisAddr)
	assert.Equal(t, 30*time.Second, c.CacheTTL)
	assert.Equal(t, 1, c.Workers)
	assert.Equal(t, 5, c.FeedRPS)
}

func TestLoad_UnknownSourceFallsBack(t *testing.T) {
	t.Setenv("DATA_SOURCE", "mongo")
	assert.Equal(t, shared.SourceStatic, shared.Load().DataSource)
}
