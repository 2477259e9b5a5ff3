// Package backend is the GraphQL client for the restaurant's reservation
// API. Every operation the frontdesk exposes ends up here; the backend owns
// resolution, authorization, persistence and email dispatch.
package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/CutieCat6778/reservation-frontdesk/config"
	"github.com/CutieCat6778/reservation-frontdesk/internal/errs"
	"github.com/CutieCat6778/reservation-frontdesk/internal/model"
	"github.com/CutieCat6778/reservation-frontdesk/internal/view"
	"github.com/CutieCat6778/reservation-frontdesk/pkg/breaker"

	"go.uber.org/zap"
)

type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.Backend
	cb     breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service { //nolint:gocritic
	return &Service{
		log:    log.Named("backend"),
		client: &http.Client{Timeout: cfg.Backend.Timeout},
		cfg:    cfg.Backend,
		cb:     breaker.New(20, 10*time.Second, 0.5, 5),
	}
}

func (s *Service) CB() breaker.CircuitBreaker {
	return s.cb
}

func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.CreateReservationResponse, error) {
	var out struct {
		CreateReservation model.CreateReservationResponse `json:"createReservation"`
	}
	vars := map[string]any{
		"firstName":   req.FirstName,
		"lastName":    req.LastName,
		"phoneNumber": req.PhoneNumber,
		"email":       req.Email,
		"amount":      req.Amount,
		"reserveAt":   req.ReserveAt,
		"notes":       req.Notes,
	}
	if err := s.do(ctx, "", request{Query: mutationCreateReservation, Variables: vars}, &out); err != nil {
		return model.CreateReservationResponse{}, err
	}
	return out.CreateReservation, nil
}

func (s *Service) LoginWithReservation(ctx context.Context, id, lastName string) (model.GuestLoginResponse, error) {
	var out struct {
		LoginWithReservation model.GuestLoginResponse `json:"loginWithReservation"`
	}
	vars := map[string]any{"id": id, "lastName": lastName}
	if err := s.do(ctx, "", request{Query: mutationLoginWithReservation, Variables: vars}, &out); err != nil {
		return model.GuestLoginResponse{}, err
	}
	if out.LoginWithReservation.Token == "" || out.LoginWithReservation.Reservation == nil {
		return model.GuestLoginResponse{}, errs.ErrUnauthorized
	}
	return out.LoginWithReservation, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Login string `json:"login"`
	}
	vars := map[string]any{"username": username, "password": password}
	if err := s.do(ctx, "", request{Query: mutationLogin, Variables: vars}, &out); err != nil {
		return "", err
	}
	if out.Login == "" {
		return "", errs.ErrUnauthorized
	}
	return out.Login, nil
}

func (s *Service) UpdateReservation(ctx context.Context, token string, req model.UpdateReservationRequest) (model.Reservation, error) {
	var out struct {
		UpdateReservation model.Reservation `json:"updateReservation"`
	}
	vars := map[string]any{"input": req}
	if err := s.do(ctx, token, request{Query: mutationUpdateReservation, Variables: vars}, &out); err != nil {
		return model.Reservation{}, err
	}
	return out.UpdateReservation, nil
}

// Reopen sets a reservation back to OPEN. The backend treats an update
// carrying nothing but the id as the explicit reopen action.
func (s *Service) Reopen(ctx context.Context, token, id string) (model.Reservation, error) {
	return s.UpdateReservation(ctx, token, model.UpdateReservationRequest{ID: id})
}

func (s *Service) CancelReservation(ctx context.Context, token, id string) (model.Reservation, error) {
	var out struct {
		CancelReservation model.Reservation `json:"cancelReservation"`
	}
	if err := s.do(ctx, token, request{Query: mutationCancelReservation, Variables: map[string]any{"id": id}}, &out); err != nil {
		return model.Reservation{}, err
	}
	return out.CancelReservation, nil
}

func (s *Service) ConfirmReservation(ctx context.Context, token, id string) (model.Reservation, error) {
	var out struct {
		ConfirmReservation model.Reservation `json:"confirmReservation"`
	}
	if err := s.do(ctx, token, request{Query: mutationConfirmReservation, Variables: map[string]any{"id": id}}, &out); err != nil {
		return model.Reservation{}, err
	}
	return out.ConfirmReservation, nil
}

func (s *Service) DeclineReservation(ctx context.Context, token, id string) (model.Reservation, error) {
	var out struct {
		DeclineReservation model.Reservation `json:"declineReservation"`
	}
	if err := s.do(ctx, token, request{Query: mutationDeclineReservation, Variables: map[string]any{"id": id}}, &out); err != nil {
		return model.Reservation{}, err
	}
	return out.DeclineReservation, nil
}

func (s *Service) SendMessage(ctx context.Context, token, id, content string) error {
	var out struct {
		SendMessageToReservation bool `json:"sendMessageToReservation"`
	}
	vars := map[string]any{"id": id, "content": content}
	if err := s.do(ctx, token, request{Query: mutationSendMessageToReservation, Variables: vars}, &out); err != nil {
		return err
	}
	if !out.SendMessageToReservation {
		return errs.ErrBackend
	}
	return nil
}

// ListReservations executes a resolved view request. Always a fresh fetch;
// the frontdesk never reuses results across view switches.
func (s *Service) ListReservations(ctx context.Context, token string, req view.Request) ([]model.Reservation, error) {
	var data map[string][]model.Reservation
	if err := s.do(ctx, token, request{Query: req.Query, Variables: req.Variables}, &data); err != nil {
		return nil, err
	}
	return data[req.DataKey], nil
}

// GetReservation looks a single reservation up through the filtered query.
func (s *Service) GetReservation(ctx context.Context, token, id string) (model.Reservation, error) {
	list, err := s.ListReservations(ctx, token, view.ByID(id))
	if err != nil {
		return model.Reservation{}, err
	}
	if len(list) == 0 {
		return model.Reservation{}, errs.ErrNotFound
	}
	return list[0], nil
}

func (s *Service) InfoToday(ctx context.Context, token string) (model.ReservationInfo, error) {
	var out struct {
		GetReservationInfoToday model.ReservationInfo `json:"getReservationInfoToday"`
	}
	if err := s.do(ctx, token, request{Query: queryReservationInfoToday}, &out); err != nil {
		return model.ReservationInfo{}, err
	}
	return out.GetReservationInfoToday, nil
}
