// Package lifecycle holds the reservation status state machine as enforced
// cooperatively by this gateway and the backend. The gateway mirrors the
// rules to fail early; the backend stays authoritative.
package lifecycle

import (
	"github.com/CutieCat6778/reservation-frontdesk/internal/model"
)

type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
)

// CanTransition reports whether the actor may move a reservation from one
// status to another.
//
// Staff: OPEN→CONFIRMED, OPEN→DECLINED, CONFIRMED→DECLINED, and any→OPEN
// (reopen, idempotent when already OPEN). Staff never cancels; they decline.
// Guest: any non-CANCELED status → CANCELED, nothing else.
func CanTransition(role Role, from, to model.Status) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	switch role {
	case RoleStaff:
		if to == model.StatusOpen {
			return true
		}
		switch {
		case from == model.StatusOpen && to == model.StatusConfirmed:
			return true
		case from == model.StatusOpen && to == model.StatusDeclined:
			return true
		case from == model.StatusConfirmed && to == model.StatusDeclined:
			return true
		}
		return false
	case RoleGuest:
		return to == model.StatusCanceled && from != model.StatusCanceled
	}
	return false
}

// NextStatuses lists the statuses the actor may transition to from the
// current one, self-transitions excluded. Used for action hints (rendered
// as disabled buttons upstream).
func NextStatuses(role Role, from model.Status) []model.Status {
	all := []model.Status{model.StatusOpen, model.StatusConfirmed, model.StatusCanceled, model.StatusDeclined}
	var next []model.Status
	for _, to := range all {
		if to == from {
			continue
		}
		if CanTransition(role, from, to) {
			next = append(next, to)
		}
	}
	return next
}

// FrozenByConvention reports whether a reservation should be treated as a
// dead record. Field edits are still accepted in any status, matching the
// backend contract; callers use this only to log or hint.
func FrozenByConvention(s model.Status) bool {
	return s == model.StatusCanceled
}
