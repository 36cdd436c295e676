package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func TestCountLikes(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewEngagementRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes" WHERE post_id = \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountLikes(5)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasLiked(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewEngagementRepository(gdb)

	t.Run("Pair exists", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "likes" WHERE user_id = \$1 AND post_id = \$2`).
			WithArgs(1, 5).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		liked, err := repo.HasLiked(1, 5)

		assert.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("Pair absent", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "likes" WHERE user_id = \$1 AND post_id = \$2`).
			WithArgs(1, 6).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		liked, err := repo.HasLiked(1, 6)

		assert.NoError(t, err)
		assert.False(t, liked)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSavedPostIDs(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewEngagementRepository(gdb)

	mock.ExpectQuery(`SELECT "post_id" FROM "saved_posts" WHERE user_id = \$1 ORDER BY created_at desc`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(7).AddRow(3))

	ids, err := repo.ListSavedPostIDs(1)

	assert.NoError(t, err)
	assert.Equal(t, []uint{7, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteLike(t *testing.T) {
	gdb, mock := setupMockDB(t)
	repo := NewEngagementRepository(gdb)

	t.Run("Zero rows affected is not an error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "likes" WHERE user_id = \$1 AND post_id = \$2`).
			WithArgs(1, 5).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.DeleteLike(1, 5)

		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
