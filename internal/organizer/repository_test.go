package organizer

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var organizerColumns = []string{
	"id", "slug", "name", "test_mode",
	"api_key", "private_key", "test_api_key", "test_private_key",
	"api_secret_hash",
}

func TestRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(organizerColumns).
			AddRow(1, "helsinki-live", "Helsinki Live Oy", false,
				"live-key", "live-secret", "test-key", "test-secret", "hash")

		mock.ExpectQuery(`FROM organizers WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		o, err := repo.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "helsinki-live", o.Slug)
		assert.False(t, o.TestMode)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`FROM organizers WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(organizerColumns))

		_, err := repo.Get(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`FROM organizers WHERE id = \$1`).
			WillReturnError(errors.New("db down"))

		_, err := repo.Get(context.Background(), 1)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_GetBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows(organizerColumns).
		AddRow(1, "helsinki-live", "Helsinki Live Oy", true,
			"live-key", "live-secret", "test-key", "test-secret", "hash")

	mock.ExpectQuery(`FROM organizers WHERE slug = \$1`).
		WithArgs("helsinki-live").
		WillReturnRows(rows)

	o, err := repo.GetBySlug(context.Background(), "helsinki-live")
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.True(t, o.TestMode)
}

func TestCredentials(t *testing.T) {
	o := &Organizer{
		APIKey:         "live-key",
		PrivateKey:     "live-secret",
		TestAPIKey:     "test-key",
		TestPrivateKey: "test-secret",
	}

	t.Run("LiveMode", func(t *testing.T) {
		api, priv, ok := o.Credentials()
		assert.True(t, ok)
		assert.Equal(t, "live-key", api)
		assert.Equal(t, "live-secret", priv)
	})

	t.Run("TestMode", func(t *testing.T) {
		o.TestMode = true
		api, priv, ok := o.Credentials()
		assert.True(t, ok)
		assert.Equal(t, "test-key", api)
		assert.Equal(t, "test-secret", priv)
	})

	t.Run("IncompletePair", func(t *testing.T) {
		missing := &Organizer{APIKey: "live-key"}
		_, _, ok := missing.Credentials()
		assert.False(t, ok)
	})
}
