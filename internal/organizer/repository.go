package organizer

import (
	"context"
	"database/sql"
	"errors"
)

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Store {
	return &repository{db: db}
}

const selectOrganizer = `
	SELECT id, slug, name, test_mode,
	       api_key, private_key, test_api_key, test_private_key,
	       api_secret_hash
	FROM organizers`

func (r *repository) Get(ctx context.Context, id int64) (*Organizer, error) {
	return scan(r.db.QueryRowContext(ctx, selectOrganizer+` WHERE id = $1`, id))
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Organizer, error) {
	return scan(r.db.QueryRowContext(ctx, selectOrganizer+` WHERE slug = $1`, slug))
}

func scan(row *sql.Row) (*Organizer, error) {
	var o Organizer
	err := row.Scan(&o.ID, &o.Slug, &o.Name, &o.TestMode,
		&o.APIKey, &o.PrivateKey, &o.TestAPIKey, &o.TestPrivateKey,
		&o.APISecretHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
