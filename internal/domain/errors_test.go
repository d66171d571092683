package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

func TestErrorConstructors(t *testing.T) {
	err := NotFound("master service")
	require.True(t, httperr.IsBusiness(err, "master_service_not_found"))
	require.Equal(t, httperr.KindNotFound, httperr.KindOf(err))

	var be httperr.BusinessError
	require.True(t, errors.As(err, &be))
	require.Equal(t, "Master service not found.", be.Message)

	cause := errors.New("23505")
	err = EmailTaken(cause)
	require.ErrorIs(t, err, cause)
	require.Equal(t, httperr.KindConflict, httperr.KindOf(err))

	err = Storage("create_booking", cause)
	require.True(t, httperr.IsBusiness(err, "create_booking_failed"))
	require.Equal(t, httperr.KindInternal, httperr.KindOf(err))
}
