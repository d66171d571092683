package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
)

func TestClassify(t *testing.T) {
	r := NewMarketplaceGormRepository(nil, nil)

	require.NoError(t, r.classify("op", "user", nil))

	err := r.classify("get_request", "request", fmt.Errorf("query: %w", gorm.ErrRecordNotFound))
	require.True(t, httperr.IsBusiness(err, "request_not_found"))
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
	err = r.classify("create_user", "user", dup)
	require.True(t, httperr.IsBusiness(err, "user_email_taken"))
	require.Equal(t, httperr.KindConflict, httperr.KindOf(err))

	err = r.classify("create_service", "service", dup)
	require.True(t, httperr.IsBusiness(err, "service_conflict"))

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_bookings_service"}
	err = r.classify("create_booking", "booking", fk)
	require.True(t, httperr.IsBusiness(err, "service_not_found"))

	fk = &pgconn.PgError{Code: "23503", ConstraintName: "something_else"}
	err = r.classify("create_booking", "booking", fk)
	require.True(t, httperr.IsBusiness(err, "referenced_record_not_found"))

	boom := errors.New("connection reset by peer")
	err = r.classify("create_booking", "booking", boom)
	require.Equal(t, httperr.KindInternal, httperr.KindOf(err))

	var be httperr.BusinessError
	require.True(t, errors.As(err, &be))
	require.Equal(t, "create_booking_failed", be.Code)
	require.Equal(t, boom.Error(), be.Detail)
}
