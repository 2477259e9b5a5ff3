package model

import (
	"time"
)

type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusConfirmed Status = "CONFIRMED"
	StatusCanceled  Status = "CANCELED"
	StatusDeclined  Status = "DECLINED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusConfirmed, StatusCanceled, StatusDeclined:
		return true
	}
	return false
}

// BigTableAmount is the party size from which a reservation counts as a
// big table. Display/filter classification only, never stored.
const BigTableAmount = 5

type Reservation struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Amount      int       `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
	ReserveAt   time.Time `json:"reserveAt"`
	Status      Status    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
}

func (r Reservation) IsBigTable() bool {
	return r.Amount >= BigTableAmount
}

// FullName is used for email salutations.
func (r Reservation) FullName() string {
	if r.FirstName == "" {
		return r.LastName
	}
	return r.FirstName + " " + r.LastName
}

type CreateReservationRequest struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName" validate:"required"`
	PhoneNumber string    `json:"phoneNumber" validate:"required,numeric,min=10,max=15"`
	Email       string    `json:"email" validate:"required,email"`
	Amount      int       `json:"amount" validate:"required,min=1"`
	ReserveAt   time.Time `json:"reserveAt" validate:"required"`
	Notes       string    `json:"notes"`
}

type CreateReservationResponse struct {
	Token       string      `json:"token"`
	Reservation Reservation `json:"reservation"`
}

type GuestLoginRequest struct {
	ID       string `json:"id" validate:"required"`
	LastName string `json:"lastName" validate:"required"`
}

type GuestLoginResponse struct {
	Token       string       `json:"token"`
	Reservation *Reservation `json:"reservation"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateReservationRequest carries any subset of the mutable fields.
// Nil means "leave untouched"; the backend applies it as a partial update.
type UpdateReservationRequest struct {
	ID          string     `json:"id"`
	FirstName   *string    `json:"firstName,omitempty"`
	LastName    *string    `json:"lastName,omitempty"`
	PhoneNumber *string    `json:"phoneNumber,omitempty" validate:"omitempty,numeric,min=10,max=15"`
	Email       *string    `json:"email,omitempty" validate:"omitempty,email"`
	Amount      *int       `json:"amount,omitempty" validate:"omitempty,min=1"`
	ReserveAt   *time.Time `json:"reserveAt,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

func (r UpdateReservationRequest) Empty() bool {
	return r.FirstName == nil && r.LastName == nil && r.PhoneNumber == nil &&
		r.Email == nil && r.Amount == nil && r.ReserveAt == nil && r.Notes == nil
}

type DeclineRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ReservationFilter mirrors the backend's ReservationFilter input. The date
// bounds are preformatted strings so hour-range views can keep their
// local-time representation on the wire.
type ReservationFilter struct {
	ID          *string `json:"id,omitempty"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Status      *Status `json:"status,omitempty"`
	DateFrom    *string `json:"dateFrom,omitempty"`
	DateTo      *string `json:"dateTo,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// ReservationInfo is a read-only aggregate snapshot computed by the backend.
// The frontdesk only renders and classifies it.
type ReservationInfo struct {
	TotalReservation          int          `json:"totalReservation"`
	TotalPerson               int          `json:"totalPerson"`
	TotalOpenReservation      int          `json:"totalOpenReservation"`
	TotalBigReservation       int          `json:"totalBigReservation"`
	TotalConfirmedReservation int          `json:"totalConfirmedReservation"`
	TotalCanceledReservation  int          `json:"totalCanceledReservation"`
	ByHours                   []InfoByHour `json:"byHours"`
}

type InfoByHour struct {
	TotalReservation    int       `json:"totalReservation"`
	TotalPerson         int       `json:"totalPerson"`
	TotalBigReservation int       `json:"totalBigReservation"`
	StartsAt            time.Time `json:"startsAt"`
	EndsAt              time.Time `json:"endsAt"`
}

// NotificationMsg is the payload queued for replay when a decline notice
// could not be delivered in-band.
type NotificationMsg struct {
	ReservationID string `json:"reservationId"`
	Content       string `json:"content"`
	Token         string `json:"token"`
}
