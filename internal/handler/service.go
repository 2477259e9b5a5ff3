package handler

import (
	"context"

	"github.com/CutieCat6778/reservation-frontdesk/internal/model"
	"github.com/CutieCat6778/reservation-frontdesk/internal/service/backend"
	"github.com/CutieCat6778/reservation-frontdesk/internal/view"
	"github.com/CutieCat6778/reservation-frontdesk/pkg/breaker"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ BackendService = (*backend.Service)(nil)

type BackendService interface {
	CB() breaker.CircuitBreaker

	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.CreateReservationResponse, error)
	LoginWithReservation(ctx context.Context, id, lastName string) (model.GuestLoginResponse, error)
	Login(ctx context.Context, username, password string) (string, error)

	UpdateReservation(ctx context.Context, token string, req model.UpdateReservationRequest) (model.Reservation, error)
	Reopen(ctx context.Context, token, id string) (model.Reservation, error)
	CancelReservation(ctx context.Context, token, id string) (model.Reservation, error)
	ConfirmReservation(ctx context.Context, token, id string) (model.Reservation, error)
	DeclineReservation(ctx context.Context, token, id string) (model.Reservation, error)
	SendMessage(ctx context.Context, token, id, content string) error

	ListReservations(ctx context.Context, token string, req view.Request) ([]model.Reservation, error)
	GetReservation(ctx context.Context, token, id string) (model.Reservation, error)
	InfoToday(ctx context.Context, token string) (model.ReservationInfo, error)
}

type Enqueuer interface {
	Enqueue(topic string, v any) error
}
