//go:build integration

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"localbiz/internal/adapters/feed"
	server "localbiz/internal/adapters/http_server"
	redisad "localbiz/internal/adapters/redis"
	"localbiz/internal/app"
	"localbiz/internal/domain"
	mysqlrepo "localbiz/internal/storage/mysql"
	"localbiz/internal/storage/static"
)

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=localbiz"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/localbiz?parseTime=true&charset=utf8mb4&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// feedServer replays the bundled fixtures as the upstream feed.
func feedServer(t *testing.T) *httptest.Server {
	t.Helper()
	src := static.New()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var kind string
		if _, err := fmt.Sscanf(r.URL.Path, "/catalogs/%s", &kind); err != nil {
			http.NotFound(w, r)
			return
		}
		docs, err := src.Load(r.Context(), domain.Kind(kind))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(docs)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_IngestThenServe(t *testing.T) {
	db := startMySQL(t)
	ctx := context.Background()
	if err := mysqlrepo.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := mysqlrepo.New(db)

	// Ingest every kind from the fake upstream.
	client, err := feed.New(feedServer(t).URL, "e2e-key", 100)
	if err != nil {
		t.Fatalf("feed client: %v", err)
	}
	ing := app.NewIngestionService(client, repo)
	for _, k := range domain.Kinds {
		rep, err := ing.IngestKind(ctx, k)
		if err != nil || rep.Stored == 0 || rep.Rejected != 0 {
			t.Fatalf("ingest %s: %+v %v", k, rep, err)
		}
	}

	// Serve from MySQL with a Redis result cache.
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	catalogs := app.NewCatalogs(repo, cache, time.Minute)
	if err := catalogs.RefreshAll(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	srv := server.New(5 * time.Second)
	srv.MountHandlers(&server.Handlers{C: catalogs})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	for i := 0; i < 2; i++ { // second pass is served from Redis
		res, err := http.Get(ts.URL + "/v1/catalogs/bars?drinks=mezcal&sort=rating&lang=es")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		var body struct {
			Locale string `json:"locale"`
			Items  []struct {
				ID string `json:"id"`
			} `json:"items"`
		}
		err = json.NewDecoder(res.Body).Decode(&body)
		res.Body.Close()
		if err != nil || res.StatusCode != http.StatusOK {
			t.Fatalf("status %d: %v", res.StatusCode, err)
		}
		if body.Locale != "es" || len(body.Items) != 2 || body.Items[0].ID != "bar-in-situ" {
			t.Fatalf("unexpected body: %+v", body)
		}
	}
	if len(mr.Keys()) == 0 {
		t.Fatalf("expected cached search results in redis")
	}
}
