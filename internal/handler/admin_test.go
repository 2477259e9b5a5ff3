package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/CutieCat6778/reservation-frontdesk/internal/errs"
	"github.com/CutieCat6778/reservation-frontdesk/internal/model"
	"github.com/CutieCat6778/reservation-frontdesk/internal/session"
	"github.com/CutieCat6778/reservation-frontdesk/internal/view"
	"github.com/CutieCat6778/reservation-frontdesk/pkg/kafka"

	service_mocks "github.com/CutieCat6778/reservation-frontdesk/internal/handler/mocks"
)

func TestHandler_AdminLogin(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockBehavior func(svc *service_mocks.MockBackendService)
		wantCode     int
		wantCookie   bool
	}{
		{
			name: "ok",
			body: `{"username":"staff","password":"secret"}`,
			mockBehavior: func(svc *service_mocks.MockBackendService) {
				svc.EXPECT().
					Login(gomock.Any(), "staff", "secret").
					Return("staff-jwt", nil)
			},
			wantCode:   http.StatusNoContent,
			wantCookie: true,
		},
		{
			name: "err. wrong credentials store no token",
			body: `{"username":"staff","password":"wrong"}`,
			mockBehavior: func(svc *service_mocks.MockBackendService) {
				svc.EXPECT().
					Login(gomock.Any(), "staff", "wrong").
					Return("", errs.ErrUnauthorized)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:         "err. missing password",
			body:         `{"username":"staff"}`,
			mockBehavior: func(svc *service_mocks.MockBackendService) {},
			wantCode:     http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e, svc, _ := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.wantCode, w.Code)
			cookie := findCookie(w.Result(), session.StaffCookie)
			if tt.wantCookie {
				require.NotNil(t, cookie)
				require.True(t, cookie.HttpOnly)
			} else {
				require.Nil(t, cookie)
			}
		})
	}
}

func TestHandler_StaffAuthRequired(t *testing.T) {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/admin/dashboard"},
		{http.MethodGet, "/api/v1/admin/reservations/views/open"},
		{http.MethodPost, "/api/v1/admin/reservations/res-1/confirm"},
		{http.MethodPost, "/api/v1/admin/reservations/res-1/reopen"},
	}
	for _, p := range paths {
		p := p
		t.Run(p.path, func(t *testing.T) {
			e, _, _ := newTestRouter(t)

			r := httptest.NewRequest(p.method, p.path, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	t.Run("guest session does not open staff routes", func(t *testing.T) {
		e, _, _ := newTestRouter(t)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", http.NoBody)
		r.AddCookie(sessionCookie(t, session.RoleGuest, "guest-jwt"))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Dashboard(t *testing.T) {
	e, svc, _ := newTestRouter(t)

	now := time.Now()
	svc.EXPECT().
		InfoToday(gomock.Any(), "staff-jwt").
		Return(model.ReservationInfo{
			TotalReservation:          12,
			TotalPerson:               40,
			TotalOpenReservation:      11,
			TotalConfirmedReservation: 1,
			ByHours: []model.InfoByHour{
				{TotalReservation: 3, StartsAt: now.Add(-10 * time.Minute), EndsAt: now.Add(20 * time.Minute)},
				{TotalReservation: 2, StartsAt: now.Add(20 * time.Minute), EndsAt: now.Add(50 * time.Minute)},
			},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", http.NoBody)
	r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "Offene Reservierungen")
	// 11 open exceeds the warning band, 1 confirmed sits inside it
	require.Contains(t, body, `"severity":"red"`)
	require.Contains(t, body, `"severity":"yellow"`)
	// only the bucket containing now is flagged
	require.Equal(t, 1, strings.Count(body, `"current":true`))
}

func TestHandler_ListView(t *testing.T) {
	t.Run("ok. open view forwards the status filter", func(t *testing.T) {
		e, svc, _ := newTestRouter(t)

		v, err := view.ParseSlug("open")
		require.NoError(t, err)
		wantReq, err := v.Resolve()
		require.NoError(t, err)

		svc.EXPECT().
			ListReservations(gomock.Any(), "staff-jwt", wantReq).
			Return([]model.Reservation{
				{ID: "res-1", Amount: 6, Status: model.StatusOpen},
			}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations/views/open", http.NoBody)
		r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		require.Contains(t, body, `"bigTable":true`)
		require.Contains(t, body, `"actions":["CONFIRMED","DECLINED"]`)
	})

	t.Run("ok. every request hits the backend again", func(t *testing.T) {
		e, svc, _ := newTestRouter(t)

		svc.EXPECT().
			ListReservations(gomock.Any(), "staff-jwt", gomock.Any()).
			Return([]model.Reservation{}, nil).
			Times(2)

		for i := 0; i < 2; i++ {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations/views/total", http.NoBody)
			r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)
			require.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("err. unknown slug", func(t *testing.T) {
		e, _, _ := newTestRouter(t)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations/views/everything", http.NoBody)
		r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListHourRange(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		e, svc, _ := newTestRouter(t)

		svc.EXPECT().
			ListReservations(gomock.Any(), "staff-jwt", gomock.Any()).
			Return([]model.Reservation{}, nil)

		r := httptest.NewRequest(http.MethodGet,
			"/api/v1/admin/reservations/hours?startsAt=2025-04-15T18:00:00%2B02:00&endsAt=2025-04-15T18:30:00%2B02:00", http.NoBody)
		r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("err. inverted bounds", func(t *testing.T) {
		e, _, _ := newTestRouter(t)

		r := httptest.NewRequest(http.MethodGet,
			"/api/v1/admin/reservations/hours?startsAt=2025-04-15T18:30:00%2B02:00&endsAt=2025-04-15T18:00:00%2B02:00", http.NoBody)
		r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Confirm(t *testing.T) {
	tests := []struct {
		name         string
		mockBehavior func(svc *service_mocks.MockBackendService)
		wantCode     int
	}{
		{
			name: "ok. open confirms",
			mockBehavior: func(svc *service_mocks.MockBackendService) {
				svc.EXPECT().
					GetReservation(gomock.Any(), "staff-jwt", "res-1").
					Return(model.Reservation{ID: "res-1", Status: model.StatusOpen}, nil)
				svc.EXPECT().
					ConfirmReservation(gomock.Any(), "staff-jwt", "res-1").
					Return(model.Reservation{ID: "res-1", Status: model.StatusConfirmed}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "err. confirmed cannot confirm again",
			mockBehavior: func(svc *service_mocks.MockBackendService) {
				svc.EXPECT().
					GetReservation(gomock.Any(), "staff-jwt", "res-1").
					Return(model.Reservation{ID: "res-1", Status: model.StatusConfirmed}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "err. declined cannot confirm",
			mockBehavior: func(svc *service_mocks.MockBackendService) {
				svc.EXPECT().
					GetReservation(gomock.Any(), "staff-jwt", "res-1").
					Return(model.Reservation{ID: "res-1", Status: model.StatusDeclined}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "err. not found",
			mockBehavior: func(svc *service_mocks.MockBackendService) {
				svc.EXPECT().
					GetReservation(gomock.Any(), "staff-jwt", "res-1").
					Return(model.Reservation{}, errs.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e, svc, _ := newTestRouter(t)
			tt.mockBehavior(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reservations/res-1/confirm", http.NoBody)
			r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_Decline(t *testing.T) {
	openReservation := model.Reservation{
		ID:        "res-1",
		FirstName: "Anna",
		LastName:  "Schmidt",
		Status:    model.StatusOpen,
	}

	t.Run("ok. declined and notified", func(t *testing.T) {
		e, svc, _ := newTestRouter(t)

		svc.EXPECT().
			GetReservation(gomock.Any(), "staff-jwt", "res-1").
			Return(openReservation, nil)
		svc.EXPECT().
			DeclineReservation(gomock.Any(), "staff-jwt", "res-1").
			Return(model.Reservation{ID: "res-1", Status: model.StatusDeclined}, nil)
		svc.EXPECT().
			SendMessage(gomock.Any(), "staff-jwt", "res-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, content string) error {
				require.Contains(t, content, "Anna Schmidt")
				require.Contains(t, content, "montags geschlossen")
				require.Contains(t, content, "http://localhost:3000/reservation?id=res-1")
				return nil
			})

		r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reservations/res-1/decline",
			strings.NewReader(`{"reason":"mondayClosed"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"notified":true`)
	})

	t.Run("ok. failed delivery is queued, decline stands", func(t *testing.T) {
		e, svc, queue := newTestRouter(t)

		svc.EXPECT().
			GetReservation(gomock.Any(), "staff-jwt", "res-1").
			Return(openReservation, nil)
		svc.EXPECT().
			DeclineReservation(gomock.Any(), "staff-jwt", "res-1").
			Return(model.Reservation{ID: "res-1", Status: model.StatusDeclined}, nil)
		svc.EXPECT().
			SendMessage(gomock.Any(), "staff-jwt", "res-1", gomock.Any()).
			Return(errs.ErrBackend)
		queue.EXPECT().
			Enqueue(kafka.NotificationTopic, gomock.AssignableToTypeOf(model.NotificationMsg{})).
			DoAndReturn(func(_ string, v any) error {
				msg := v.(model.NotificationMsg)
				require.Equal(t, "res-1", msg.ReservationID)
				require.Equal(t, "staff-jwt", msg.Token)
				require.NotEmpty(t, msg.Content)
				return nil
			})

		r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reservations/res-1/decline",
			strings.NewReader(`{"reason":"mondayClosed"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusAccepted, w.Code)
		require.Contains(t, w.Body.String(), `"notified":false`)
	})

	t.Run("err. missing reason never reaches the backend", func(t *testing.T) {
		e, _, _ := newTestRouter(t)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reservations/res-1/decline",
			strings.NewReader(`{}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("err. unknown reason key", func(t *testing.T) {
		e, svc, _ := newTestRouter(t)

		svc.EXPECT().
			GetReservation(gomock.Any(), "staff-jwt", "res-1").
			Return(openReservation, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reservations/res-1/decline",
			strings.NewReader(`{"reason":"noSuchTemplate"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("err. canceled cannot be declined", func(t *testing.T) {
		e, svc, _ := newTestRouter(t)

		svc.EXPECT().
			GetReservation(gomock.Any(), "staff-jwt", "res-1").
			Return(model.Reservation{ID: "res-1", Status: model.StatusCanceled}, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reservations/res-1/decline",
			strings.NewReader(`{"reason":"mondayClosed"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_Reopen(t *testing.T) {
	e, svc, _ := newTestRouter(t)

	svc.EXPECT().
		Reopen(gomock.Any(), "staff-jwt", "res-1").
		Return(model.Reservation{ID: "res-1", Status: model.StatusOpen}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reservations/res-1/reopen", http.NoBody)
	r.AddCookie(sessionCookie(t, session.RoleStaff, "staff-jwt"))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"OPEN"`)
}
