package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"phonedash/internal/domain"
)

type ConfigRepo struct{ db *sqlx.DB }

func NewConfigRepo(db *sqlx.DB) *ConfigRepo { return &ConfigRepo{db: db} }

// Get returns the document with the given id, or sql.ErrNoRows.
func (r *ConfigRepo) Get(ctx context.Context, id string) (domain.ConfigDocument, error) {
	var d domain.ConfigDocument
	err := r.db.GetContext(ctx, &d, `
		SELECT id, body, version, COALESCE(updated_at,'') AS updated_at
		FROM config_documents
		WHERE id = ?
	`, id)
	return d, err
}

// Upsert replaces the body of a document and returns its new version.
func (r *ConfigRepo) Upsert(ctx context.Context, id, body string) (int, error) {
	var version int
	err := r.db.GetContext(ctx, &version, `
		INSERT INTO config_documents(id, body, version, updated_at)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
		  body = excluded.body,
		  version = config_documents.version + 1,
		  updated_at = CURRENT_TIMESTAMP
		RETURNING version
	`, id, body)
	return version, err
}
