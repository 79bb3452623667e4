package handler

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "rest-user-service/pkg/errors"
)

func TestDecodeFields(t *testing.T) {
	t.Run("json object", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/user/", strings.NewReader(`{"first_name":"Ada"}`))

		fields, err := DecodeFields(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"first_name": "Ada"}, fields)
	})

	t.Run("empty object", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/user/", strings.NewReader(`{}`))

		fields, err := DecodeFields(req)
		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/user/", strings.NewReader(""))

		_, err := DecodeFields(req)
		assertDecodeError(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/user/", strings.NewReader(`{"first_name":`))

		_, err := DecodeFields(req)
		assertDecodeError(t, err)
	})

	t.Run("raw text body", func(t *testing.T) {
		// A non-JSON body is a decode failure, it is not smuggled through
		// as an encoded string
		req := httptest.NewRequest("POST", "/user/", strings.NewReader("first_name=Ada"))

		_, err := DecodeFields(req)
		assertDecodeError(t, err)
	})

	t.Run("json array", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/user/", strings.NewReader(`["Ada"]`))

		_, err := DecodeFields(req)
		assertDecodeError(t, err)
	})
}

func assertDecodeError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)

	var decodeErr *apperrors.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "Invalid or missing User data", err.Error())
}
