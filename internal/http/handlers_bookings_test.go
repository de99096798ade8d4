package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/monastery360/m360-api/internal/domain/model"
)

func bookingPayload() map[string]any {
	return map[string]any{
		"monastery_id": "m-1",
		"visit_date":   "2026-10-05T09:00:00Z",
		"visitors": []map[string]any{
			{"name": "Elena Rodriguez", "age": 34, "ticket_type": "adult"},
		},
	}
}

func TestBookings_Create_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	rec := f.do(t, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "authentication_required", body["error"])
}

func TestBookings_Create_UserIDComesFromSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)
	f.loginTourist(t)

	f.monasteries.EXPECT().GetByID(gomock.Any(), "m-1").Return(&model.Monastery{
		ID:            "m-1",
		TicketPricing: model.TicketPricing{Adult: 15, Currency: "EUR"},
	}, nil)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&model.Booking{})).DoAndReturn(
		func(_ any, b *model.Booking) (*model.Booking, error) {
			// The fixture tourist has id 1; a payload cannot override it.
			assert.Equal(t, "1", b.UserID)
			return b, nil
		},
	)

	rec := f.do(t, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	booking := decodeBody[*model.Booking](t, rec)
	assert.Equal(t, "1", booking.UserID)
	assert.InDelta(t, 15.0, booking.TotalAmount, 1e-9)
	assert.Equal(t, model.BookingConfirmed, booking.Status)
	assert.Equal(t, model.PaymentPaid, booking.PaymentStatus)
}

func TestBookings_Create_NullBodyIsValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)
	f.loginTourist(t)

	// `null` is valid JSON; it must read as an empty request, not crash.
	rec := f.doRaw(t, http.MethodPost, "/api/bookings", "null")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "validation_failed", body["error"])
}

func TestBookings_List_ScopedToSessionUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)
	f.loginTourist(t)

	f.bookings.EXPECT().
		List(gomock.Any(), model.BookingsListOptions{UserID: "1", Limit: 50}).
		Return([]*model.Booking{{ID: "b-1", UserID: "1"}}, nil)

	rec := f.do(t, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody[[]*model.Booking](t, rec)
	require.Len(t, out, 1)
}

func TestBookings_GetByID_OtherUsersBookingReadsAsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)
	f.loginTourist(t)

	f.bookings.EXPECT().GetByID(gomock.Any(), "b-9").
		Return(&model.Booking{ID: "b-9", UserID: "someone-else"}, nil)

	rec := f.do(t, http.MethodGet, "/api/bookings/b-9", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookings_GetByID_AdminSeesAnyBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)
	f.loginAdmin(t)

	f.bookings.EXPECT().GetByID(gomock.Any(), "b-9").
		Return(&model.Booking{ID: "b-9", UserID: "someone-else"}, nil)

	rec := f.do(t, http.MethodGet, "/api/bookings/b-9", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBookings_Cancel_Owner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)
	f.loginTourist(t)

	existing := &model.Booking{ID: "b-1", UserID: "1", Status: model.BookingConfirmed}
	cancelled := &model.Booking{ID: "b-1", UserID: "1", Status: model.BookingCancelled, PaymentStatus: model.PaymentRefunded}

	f.bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(existing, nil)
	f.bookings.EXPECT().
		UpdateStatus(gomock.Any(), "b-1", model.BookingCancelled, model.PaymentRefunded).
		Return(cancelled, nil)

	rec := f.do(t, http.MethodPost, "/api/bookings/b-1/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody[*model.Booking](t, rec)
	assert.Equal(t, model.BookingCancelled, out.Status)
}

func TestAdminBookings_ListAll_RequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)

	f.loginTourist(t)
	rec := f.do(t, http.MethodGet, "/api/admin/bookings", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminBookings_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRouterFixture(t, ctrl)
	f.loginAdmin(t)

	f.bookings.EXPECT().
		List(gomock.Any(), model.BookingsListOptions{UserID: "u-7", Status: model.BookingConfirmed, Limit: 50}).
		Return([]*model.Booking{{ID: "b-1"}, {ID: "b-2"}}, nil)

	rec := f.do(t, http.MethodGet, "/api/admin/bookings?user_id=u-7&status=confirmed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody[[]*model.Booking](t, rec)
	assert.Len(t, out, 2)
}
