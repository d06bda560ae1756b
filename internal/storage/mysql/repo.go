package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"localbiz/internal/domain"
)

// batchSize bounds the rows per multi-value INSERT.
const batchSize = 500

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// Load returns the stored documents of kind in feed order.
func (r *Repo) Load(ctx context.Context, kind domain.Kind) ([]json.RawMessage, error) {
	rows, err := r.db.QueryContext(ctx, loadListingsSQL, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []json.RawMessage
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		out = append(out, json.RawMessage(payload))
	}
	return out, rows.Err()
}

// UpsertListings replaces the stored catalog of kind with ls in one transaction.
// An empty ls clears the kind.
func (r *Repo) UpsertListings(ctx context.Context, kind domain.Kind, ls []domain.Listing) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = deleteStale(ctx, tx, kind, ls); err != nil {
		return fmt.Errorf("delete stale %s: %w", kind, err)
	}
	for start := 0; start < len(ls); start += batchSize {
		end := min(start+batchSize, len(ls))
		if err = upsertBatch(ctx, tx, kind, start, ls[start:end]); err != nil {
			return fmt.Errorf("upsert %s[%d:%d]: %w", kind, start, end, err)
		}
	}
	return tx.Commit()
}

func deleteStale(ctx context.Context, tx *sql.Tx, kind domain.Kind, ls []domain.Listing) error {
	if len(ls) == 0 {
		_, err := tx.ExecContext(ctx, deleteKindSQL, string(kind))
		return err
	}
	args := make([]any, 0, len(ls)+1)
	args = append(args, string(kind))
	for _, l := range ls {
		args = append(args, l.ID)
	}
	q := deleteStalePrefix + "(" + strings.TrimSuffix(strings.Repeat("?,", len(ls)), ",") + ")"
	_, err := tx.ExecContext(ctx, q, args...)
	return err
}

func upsertBatch(ctx context.Context, tx *sql.Tx, kind domain.Kind, offset int, ls []domain.Listing) error {
	values := make([]string, 0, len(ls))
	args := make([]any, 0, len(ls)*5)
	for i, l := range ls {
		values = append(values, "(?,?,?,?,?)")
		args = append(args, string(kind), l.ID, l.Slug, offset+i, string(l.Payload))
	}
	_, err := tx.ExecContext(ctx, upsertListingsPrefix+strings.Join(values, ",")+upsertListingsOnDup, args...)
	return err
}

func (r *Repo) LogReject(ctx context.Context, kind domain.Kind, id, reason string) error {
	_, err := r.db.ExecContext(ctx, insertRejectSQL, string(kind), id, reason)
	return err
}
