package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestKindStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:   http.StatusBadRequest,
		KindUnauthorized: http.StatusUnauthorized,
		KindForbidden:    http.StatusForbidden,
		KindNotFound:     http.StatusNotFound,
		KindConflict:     http.StatusConflict,
		KindInternal:     http.StatusInternalServerError,
		Kind(99):         http.StatusInternalServerError,
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.Status())
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := Wrap(KindConflict, "user_email_taken", "User with this email already exists", cause)

	require.ErrorIs(t, err, cause)
	require.True(t, IsBusiness(err, "user_email_taken"))
	require.Equal(t, KindConflict, KindOf(err))

	wrapped := fmt.Errorf("register: %w", err)
	require.True(t, IsBusiness(wrapped, "user_email_taken"))
	require.Equal(t, KindConflict, KindOf(wrapped))

	var be BusinessError
	require.True(t, errors.As(wrapped, &be))
	require.Equal(t, cause.Error(), be.Detail)
}

func TestKindOfPlainError(t *testing.T) {
	require.Equal(t, KindInternal, KindOf(errors.New("boom")))
	require.False(t, IsBusiness(errors.New("boom"), "boom"))
	require.Equal(t, KindValidation, KindOf(ErrBusiness("invalid_state")))
}

func TestRespond(t *testing.T) {
	t.Run("business error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		Respond(c, New(KindForbidden, "not_owner", "Unauthorized access to delete this service"))

		require.Equal(t, http.StatusForbidden, rec.Code)
		var body HTTPError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "not_owner", body.Code)
		require.Empty(t, body.Detail)
	})

	t.Run("unknown error is masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		Respond(c, errors.New("pq: connection refused"))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "connection refused")

		var body HTTPError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "internal_error", body.Code)
		require.Equal(t, "Internal server error.", body.Message)
	})
}
