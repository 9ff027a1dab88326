package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/soultrip/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormContactRepository_FindByID(t *testing.T) {
	t.Run("scopes lookup to owner", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormContactRepository(gormDB)

		ownerID := uuid.New()
		contactID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "user_id", "name", "email", "phone", "version"}).
			AddRow(contactID, ownerID, "Ada", "ada@example.com", "0701234567", 1)

		mock.ExpectQuery(`SELECT \* FROM "trusted_contacts" WHERE user_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(ownerID, contactID, 1).
			WillReturnRows(rows)

		c, err := repo.FindByID(context.Background(), ownerID, contactID)

		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, ownerID, c.GetOwnerID())
		assert.Equal(t, "Ada", c.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign contact reads as not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormContactRepository(gormDB)

		ownerID := uuid.New()
		contactID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "trusted_contacts" WHERE user_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(ownerID, contactID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		c, err := repo.FindByID(context.Background(), ownerID, contactID)

		assert.Nil(t, c)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormContactRepository_Search(t *testing.T) {
	t.Run("matches name or email case-insensitively", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormContactRepository(gormDB)

		ownerID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "user_id", "name", "email", "phone", "version"}).
			AddRow(uuid.New(), ownerID, "Ada Nilsson", "ada@example.com", "0701234567", 1)

		mock.ExpectQuery(`SELECT \* FROM "trusted_contacts" WHERE user_id = \$1 AND \(LOWER\(name\) LIKE LOWER\(\$2\) OR LOWER\(email\) LIKE LOWER\(\$3\)\)`).
			WithArgs(ownerID, "%ada%", "%ada%").
			WillReturnRows(rows)

		contacts, err := repo.Search(context.Background(), ownerID, "ada")

		assert.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, "Ada Nilsson", contacts[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormContactRepository_Delete(t *testing.T) {
	t.Run("returns not found when owner does not match", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormContactRepository(gormDB)

		ownerID := uuid.New()
		contactID := uuid.New()

		mock.ExpectExec(`DELETE FROM "trusted_contacts" WHERE user_id = \$1 AND id = \$2`).
			WithArgs(ownerID, contactID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), ownerID, contactID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
