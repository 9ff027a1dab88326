package contact

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates contact with valid input", func(t *testing.T) {
		c, err := NewContact(ownerID, "Ada Nilsson", "ada@example.com", "+46 70 123 45 67")
		require.NoError(t, err)
		assert.Equal(t, "Ada Nilsson", c.Name)
		assert.Equal(t, ownerID, c.GetOwnerID())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewContact(ownerID, "", "ada@example.com", "0701234567")
		assert.Error(t, err)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewContact(ownerID, "Ada", "not-an-email", "0701234567")
		assert.Error(t, err)
	})

	t.Run("rejects phone with letters", func(t *testing.T) {
		_, err := NewContact(ownerID, "Ada", "ada@example.com", "CALL-ME-NOW")
		assert.Error(t, err)
	})

	t.Run("rejects phone with fewer than 7 digits", func(t *testing.T) {
		_, err := NewContact(ownerID, "Ada", "ada@example.com", "123-456")
		assert.Error(t, err)
	})

	t.Run("accepts formatted phone with enough digits", func(t *testing.T) {
		_, err := NewContact(ownerID, "Ada", "ada@example.com", "(070) 123-4567")
		assert.NoError(t, err)
	})
}

func TestContactSetters(t *testing.T) {
	c, err := NewContact(uuid.New(), "Ada", "ada@example.com", "0701234567")
	require.NoError(t, err)

	require.NoError(t, c.SetName("Ada N"))
	require.NoError(t, c.SetEmail("ada.n@example.com"))
	require.NoError(t, c.SetPhone("+1 555 000 1234"))
	assert.Equal(t, 4, c.GetVersion())

	assert.Error(t, c.SetEmail("bad"))
	assert.Error(t, c.SetPhone("12"))
}

func TestValidateSearchQuery(t *testing.T) {
	assert.Error(t, ValidateSearchQuery(""))
	assert.Error(t, ValidateSearchQuery("a"))
	assert.NoError(t, ValidateSearchQuery("ad"))
}
