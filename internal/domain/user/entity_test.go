package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rest-user-service/pkg/errors"
)

func strPtr(s string) *string {
	return &s
}

func TestFullName(t *testing.T) {
	t.Run("both names set", func(t *testing.T) {
		u := User{FirstName: strPtr("Ada"), LastName: strPtr("Lovelace")}
		assert.Equal(t, "Ada Lovelace", u.FullName())
	})

	t.Run("missing names render empty", func(t *testing.T) {
		u := User{}
		assert.Equal(t, " ", u.FullName())
	})

	t.Run("only first name", func(t *testing.T) {
		u := User{FirstName: strPtr("Ada")}
		assert.Equal(t, "Ada ", u.FullName())
	})
}

func TestEmail(t *testing.T) {
	u := User{FirstName: strPtr("Ada"), LastName: strPtr("Lovelace")}
	assert.Equal(t, "Ada.Lovelace@tudublin.ie", u.Email("tudublin.ie"))
}

func TestFieldsFromMap(t *testing.T) {
	t.Run("both fields", func(t *testing.T) {
		f, err := FieldsFromMap(map[string]any{
			"first_name": "Ada",
			"last_name":  "Lovelace",
		})
		require.NoError(t, err)
		require.NotNil(t, f.FirstName)
		require.NotNil(t, f.LastName)
		assert.Equal(t, "Ada", *f.FirstName)
		assert.Equal(t, "Lovelace", *f.LastName)
	})

	t.Run("empty mapping is valid", func(t *testing.T) {
		f, err := FieldsFromMap(map[string]any{})
		require.NoError(t, err)
		assert.Nil(t, f.FirstName)
		assert.Nil(t, f.LastName)
	})

	t.Run("explicit null stays unset", func(t *testing.T) {
		f, err := FieldsFromMap(map[string]any{"first_name": nil})
		require.NoError(t, err)
		assert.Nil(t, f.FirstName)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		_, err := FieldsFromMap(map[string]any{
			"first_name": "Ada",
			"surname":    "Lovelace",
		})
		require.Error(t, err)

		var mismatch *apperrors.SchemaMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, "surname", mismatch.Field)
	})

	t.Run("non-string value is rejected", func(t *testing.T) {
		_, err := FieldsFromMap(map[string]any{"first_name": 42})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "first_name must be a string")
	})
}

func TestNew(t *testing.T) {
	u := New(Fields{FirstName: strPtr("Ada")})
	require.NotNil(t, u)
	assert.Zero(t, u.ID, "id is assigned by the store, not at construction")
	assert.Equal(t, "Ada", *u.FirstName)
	assert.Nil(t, u.LastName)
}
