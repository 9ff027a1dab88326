package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormJournalRepository_FindAll(t *testing.T) {
	t.Run("pages entries and reports the total", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormJournalRepository(gormDB)

		ownerID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "journal_entries" WHERE user_id = \$1`).
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

		rows := sqlmock.NewRows([]string{"id", "user_id", "title", "content", "version"}).
			AddRow(uuid.New(), ownerID, "Hanoi", "The old quarter hums long after midnight.", 1)

		mock.ExpectQuery(`SELECT \* FROM "journal_entries" WHERE user_id = \$1 ORDER BY created_at DESC LIMIT .* OFFSET .*`).
			WithArgs(ownerID, 10, 10).
			WillReturnRows(rows)

		entries, total, err := repo.FindAll(context.Background(), ownerID, shared.Filter{Page: 2, PageSize: 10})

		assert.NoError(t, err)
		assert.Equal(t, int64(11), total)
		require.Len(t, entries, 1)
		assert.Equal(t, "Hanoi", entries[0].Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormJournalRepository_Search(t *testing.T) {
	t.Run("matches title or content case-insensitively", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormJournalRepository(gormDB)

		ownerID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "user_id", "title", "content", "version"}).
			AddRow(uuid.New(), ownerID, "Kyoto temples", "Visited Kinkaku-ji.", 1)

		mock.ExpectQuery(`SELECT \* FROM "journal_entries" WHERE user_id = \$1 AND \(LOWER\(title\) LIKE LOWER\(\$2\) OR LOWER\(content\) LIKE LOWER\(\$3\)\)`).
			WithArgs(ownerID, "%kyoto%", "%kyoto%").
			WillReturnRows(rows)

		entries, err := repo.Search(context.Background(), ownerID, "kyoto")

		assert.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Kyoto temples", entries[0].Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
