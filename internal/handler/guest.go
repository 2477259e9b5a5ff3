package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/CutieCat6778/reservation-frontdesk/internal/model"
	"github.com/CutieCat6778/reservation-frontdesk/internal/session"
)

// CreateReservation godoc
// @Summary create a reservation and start a guest session
// @Tags guest
// @Accept json
// @Produce json
// @Param request body model.CreateReservationRequest true "reservation"
// @Success 201 {object} model.Reservation
// @Failure 400 {object} echo.HTTPError
// @Router /api/v1/reservations [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if req.ReserveAt.Before(h.now()) {
		return echo.NewHTTPError(http.StatusBadRequest, "reserveAt must be in the future")
	}
	ctx := c.Request().Context()

	var resp model.CreateReservationResponse
	if err := h.backendSvc.CB().Call(func() error {
		r, err := h.backendSvc.CreateReservation(ctx, req)
		if err != nil {
			return err
		}
		resp = r
		return nil
	}); err != nil {
		return httpError(err)
	}

	h.sessions.Save(c, session.RoleGuest, resp.Token)
	h.log.Info("reservation created",
		zap.String("id", resp.Reservation.ID),
		zap.Int("amount", resp.Reservation.Amount))

	return c.JSON(http.StatusCreated, resp.Reservation)
}

// GuestLogin godoc
// @Summary resume a guest session with reservation id and last name
// @Tags guest
// @Accept json
// @Produce json
// @Param request body model.GuestLoginRequest true "credentials"
// @Success 200 {object} model.Reservation
// @Failure 401 {object} echo.HTTPError
// @Router /api/v1/reservations/login [post]
func (h *Handler) GuestLogin(c echo.Context) error {
	var req model.GuestLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	var resp model.GuestLoginResponse
	if err := h.backendSvc.CB().Call(func() error {
		r, err := h.backendSvc.LoginWithReservation(ctx, req.ID, req.LastName)
		if err != nil {
			return err
		}
		resp = r
		return nil
	}); err != nil {
		return authError(err)
	}

	h.sessions.Save(c, session.RoleGuest, resp.Token)
	return c.JSON(http.StatusOK, resp.Reservation)
}

func (h *Handler) GuestLogout(c echo.Context) error {
	h.sessions.Clear(c, session.RoleGuest)
	return c.NoContent(http.StatusNoContent)
}

// GuestReservation returns the reservation bound to the current guest
// session, so a returning guest can render their details without re-login.
func (h *Handler) GuestReservation(c echo.Context) error {
	token, err := guestToken(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id query parameter is required")
	}
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
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

// GuestUpdate applies a partial edit to the guest's own reservation.
// An empty patch is rejected here; only staff may issue the bare-id
// update that reopens a reservation.
func (h *Handler) GuestUpdate(c echo.Context) error {
	token, err := guestToken(c)
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
	if req.ReserveAt != nil && req.ReserveAt.Before(h.now()) {
		return echo.NewHTTPError(http.StatusBadRequest, "reserveAt must be in the future")
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

// GuestCancel godoc
// @Summary cancel the guest's reservation
// @Tags guest
// @Produce json
// @Param id path string true "reservation id"
// @Success 200 {object} model.Reservation
// @Router /api/v1/reservations/{id}/cancel [post]
func (h *Handler) GuestCancel(c echo.Context) error {
	token, err := guestToken(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id := c.Param("id")
	ctx := c.Request().Context()

	var rsv model.Reservation
	if err := h.backendSvc.CB().Call(func() error {
		r, err := h.backendSvc.CancelReservation(ctx, token, id)
		if err != nil {
			return err
		}
		rsv = r
		return nil
	}); err != nil {
		return httpError(err)
	}

	h.log.Info("reservation canceled by guest", zap.String("id", id))
	return c.JSON(http.StatusOK, rsv)
}
