package mysql

const loadListingsSQL = `
SELECT payload
FROM listings
WHERE kind = ?
ORDER BY seq, id
`

const upsertListingsPrefix = "INSERT INTO listings\n  (kind, id, slug, seq, payload)\nVALUES "

const upsertListingsOnDup = ` ON DUPLICATE KEY UPDATE
  slug       = VALUES(slug),
  seq        = VALUES(seq),
  payload    = VALUES(payload),
  updated_at = CURRENT_TIMESTAMP
`

// Rows of the kind missing from the latest feed are dropped; the id list is appended.
const deleteStalePrefix = "DELETE FROM listings WHERE kind = ? AND id NOT IN "

const deleteKindSQL = `DELETE FROM listings WHERE kind = ?`

// Feed-level misses are stored with an empty id.
const insertRejectSQL = `
INSERT INTO ingest_rejects (kind, id, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE reason = VALUES(reason), seen_at = CURRENT_TIMESTAMP
`
