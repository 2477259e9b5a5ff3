package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/CutieCat6778/reservation-frontdesk/internal/dashboard"
	"github.com/CutieCat6778/reservation-frontdesk/internal/email"
	"github.com/CutieCat6778/reservation-frontdesk/internal/errs"
	"github.com/CutieCat6778/reservation-frontdesk/internal/lifecycle"
	"github.com/CutieCat6778/reservation-frontdesk/internal/model"
	"github.com/CutieCat6778/reservation-frontdesk/internal/session"
	"github.com/CutieCat6778/reservation-frontdesk/internal/view"
	"github.com/CutieCat6778/reservation-frontdesk/pkg/kafka"
)

// AdminLogin godoc
// @Summary staff login
// @Tags admin
// @Accept json
// @Param request body model.AdminLoginRequest true "credentials"
// @Success 204
// @Failure 401 {object} echo.HTTPError
// @Router /api/v1/admin/login [post]
func (h *Handler) AdminLogin(c echo.Context) error {
	var req model.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	var token string
	if err := h.backendSvc.CB().Call(func() error {
		t, err := h.backendSvc.Login(ctx, req.Username, req.Password)
		if err != nil {
			return err
		}
		token = t
		return nil
	}); err != nil {
		return authError(err)
	}

	h.sessions.Save(c, session.RoleStaff, token)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AdminLogout(c echo.Context) error {
	h.sessions.Clear(c, session.RoleStaff)
	return c.NoContent(http.StatusNoContent)
}

// Dashboard godoc
// @Summary today's aggregate overview
// @Tags admin
// @Produce json
// @Success 200 {object} dashboard.Overview
// @Router /api/v1/admin/dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	token, err := staffToken(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()

	var info model.ReservationInfo
	if err := h.backendSvc.CB().Call(func() error {
		i, err := h.backendSvc.InfoToday(ctx, token)
		if err != nil {
			return err
		}
		info = i
		return nil
	}); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dashboard.Render(info, h.now()))
}

// listItem decorates a reservation with the actions the current status
// allows, so list pages can render disabled buttons without re-deriving
// the rules.
type listItem struct {
	model.Reservation
	BigTable bool           `json:"bigTable"`
	Frozen   bool           `json:"frozen"`
	Actions  []model.Status `json:"actions"`
}

func listItems(reservations []model.Reservation) []listItem {
	items := make([]listItem, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, listItem{
			Reservation: r,
			BigTable:    r.IsBigTable(),
			Frozen:      lifecycle.FrozenByConvention(r.Status),
			Actions:     lifecycle.NextStatuses(lifecycle.RoleStaff, r.Status),
		})
	}
	return items
}

// ListView godoc
// @Summary list today's reservations for a named view
// @Tags admin
// @Produce json
// @Param view path string true "big-tables|total|open|confirmed|canceled"
// @Success 200 {array} listItem
// @Router /api/v1/admin/reservations/views/{view} [get]
func (h *Handler) ListView(c echo.Context) error {
	token, err := staffToken(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	v, err := view.ParseSlug(c.Param("view"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req, err := v.Resolve()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	var list []model.Reservation
	if err := h.backendSvc.CB().Call(func() error {
		l, err := h.backendSvc.ListReservations(ctx, token, req)
		if err != nil {
			return err
		}
		list = l
		return nil
	}); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listItems(list))
}

// ListHourRange is the drill-down from one row of the hourly table. Bounds
// arrive as RFC3339 and are requeried on every call; nothing is cached from
// the dashboard snapshot.
func (h *Handler) ListHourRange(c echo.Context) error {
	token, err := staffToken(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	start, err := time.Parse(time.RFC3339, c.QueryParam("startsAt"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid startsAt: "+err.Error())
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("endsAt"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid endsAt: "+err.Error())
	}
	if !end.After(start) {
		return echo.NewHTTPError(http.StatusBadRequest, "endsAt must be after startsAt")
	}
	req, err := view.HourRange(start, end).Resolve()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	var list []model.Reservation
	if err := h.backendSvc.CB().Call(func() error {
		l, err := h.backendSvc.ListReservations(ctx, token, req)
		if err != nil {
			return err
		}
		list = l
		return nil
	}); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listItems(list))
}

func (h *Handler) AdminReservation(c echo.Context) error {
	token, err := staffToken(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()

	var rsv model.Reservation
	if err := h.backendSvc.CB().Call(func() error {
		r, err := h.backendSvc.GetReservation(ctx, token, c.Param("id"))
		if err != nil {
			return err
		}
		rsv = r
		return nil
	}); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listItems([]model.Reservation{rsv})[0])
}

// DeclineTemplates returns the canned decline notices rendered for one
// reservation, keyed by reason.
func (h *Handler) DeclineTemplates(c echo.Context) error {
	token, err := staffToken(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	ctx := c.Request().Context()

	var rsv model.Reservation
	if err := h.backendSvc.CB().Call(func() error {
		r, err := h.backendSvc.GetReservation(ctx, token, c.Param("id"))
		if err != nil {
			return err
		}
		rsv = r
		return nil
	}); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, email.Templates(rsv))
}

func (h *Handler) AdminUpdate(c echo.Context) error {
	token, err := staffToken(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.UpdateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.ID = c.Param("id")
	if req.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	var rsv model.Reservation
	if err := h.backendSvc.CB().Call(func() error {
		r, err := h.backendSvc.UpdateReservation(ctx, token, req)
		if err != nil {
			return err
		}
		rsv = r
		return nil
	}); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

// Confirm godoc
// @Summary confirm an open reservation
// @Tags admin
// @Produce json
// @Param id path string true "reservation id"
// @Success 200 {object} model.Reservation
// @Failure 409 {object} echo.HTTPError
// @Router /api/v1/admin/reservations/{id}/confirm [post]
func (h *Handler) Confirm(c echo.Context) error {
	token, err := staffToken(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id := c.Param("id")
	ctx := c.Request().Context()

	cur, err := h.fetchReservation(c, token, id)
	if err != nil {
		return err
	}
	if !lifecycle.CanTransition(lifecycle.RoleStaff, cur.Status, model.StatusConfirmed) {
		return echo.NewHTTPError(http.StatusConflict, errs.ErrTransition.Error())
	}

	var rsv model.Reservation
	if err := h.backendSvc.CB().Call(func() error {
		r, err := h.backendSvc.ConfirmReservation(ctx, token, id)
		if err != nil {
			return err
		}
		rsv = r
		return nil
	}); err != nil {
		return httpError(err)
	}

	h.log.Info("reservation confirmed", zap.String("id", id))
	return c.JSON(http.StatusOK, rsv)
}

type declineResponse struct {
	Reservation model.Reservation `json:"reservation"`
	Notified    bool              `json:"notified"`
}

// Decline godoc
// @Summary decline a reservation and notify the guest
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "reservation id"
// @Param request body model.DeclineRequest true "decline reason key"
// @Success 200 {object} declineResponse
// @Success 202 {object} declineResponse "declined, notification queued for retry"
// @Failure 400 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /api/v1/admin/reservations/{id}/decline [post]
func (h *Handler) Decline(c echo.Context) error {
	token, err := staffToken(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.DeclineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	id := c.Param("id")
	ctx := c.Request().Context()

	cur, err := h.fetchReservation(c, token, id)
	if err != nil {
		return err
	}
	if !lifecycle.CanTransition(lifecycle.RoleStaff, cur.Status, model.StatusDeclined) {
		return echo.NewHTTPError(http.StatusConflict, errs.ErrTransition.Error())
	}

	content, err := email.Compose(cur, req.Reason, h.frontendURI)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var rsv model.Reservation
	if err := h.backendSvc.CB().Call(func() error {
		r, err := h.backendSvc.DeclineReservation(ctx, token, id)
		if err != nil {
			return err
		}
		rsv = r
		return nil
	}); err != nil {
		return httpError(err)
	}

	// The status change is committed; a failed notification must not undo
	// it. Queue the message for replay and report the partial result.
	if err := h.backendSvc.SendMessage(ctx, token, id, content); err != nil {
		h.log.Warn("decline notice delivery failed, queueing for replay",
			zap.String("id", id), zap.Error(err))
		if qerr := h.queue.Enqueue(kafka.NotificationTopic, model.NotificationMsg{
			ReservationID: id,
			Content:       content,
			Token:         token,
		}); qerr != nil {
			h.log.Error("notification enqueue failed", zap.String("id", id), zap.Error(qerr))
		}
		return c.JSON(http.StatusAccepted, declineResponse{Reservation: rsv, Notified: false})
	}

	h.log.Info("reservation declined", zap.String("id", id), zap.String("reason", req.Reason))
	return c.JSON(http.StatusOK, declineResponse{Reservation: rsv, Notified: true})
}

// Reopen godoc
// @Summary reopen a reservation from any status
// @Tags admin
// @Produce json
// @Param id path string true "reservation id"
// @Success 200 {object} model.Reservation
// @Router /api/v1/admin/reservations/{id}/reopen [post]
func (h *Handler) Reopen(c echo.Context) error {
	token, err := staffToken(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id := c.Param("id")
	ctx := c.Request().Context()

	var rsv model.Reservation
	if err := h.backendSvc.CB().Call(func() error {
		r, err := h.backendSvc.Reopen(ctx, token, id)
		if err != nil {
			return err
		}
		rsv = r
		return nil
	}); err != nil {
		return httpError(err)
	}

	h.log.Info("reservation reopened", zap.String("id", id))
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) fetchReservation(c echo.Context, token, id string) (model.Reservation, error) {
	ctx := c.Request().Context()
	var rsv model.Reservation
	if err := h.backendSvc.CB().Call(func() error {
		r, err := h.backendSvc.GetReservation(ctx, token, id)
		if err != nil {
			return err
		}
		rsv = r
		return nil
	}); err != nil {
		return model.Reservation{}, httpError(err)
	}
	return rsv, nil
}
