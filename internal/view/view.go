// Package view maps the dashboard's named views onto backend queries. The
// string-keyed lookup tables the old UI duplicated per page collapse into
// one tagged variant resolved here.
package view

import (
	"fmt"
	"time"

	"github.com/CutieCat6778/reservation-frontdesk/internal/model"
)

type Kind int

const (
	KindBigTables Kind = iota + 1
	KindTotal
	KindOpen
	KindConfirmed
	KindCanceled
	KindHourRange
)

// View is a staff list view. Start/End are only set for KindHourRange and
// describe one bucket of the hourly table, half-open [Start, End).
type View struct {
	Kind  Kind
	Start time.Time
	End   time.Time
}

// ParseSlug maps the dashboard path slugs onto views.
func ParseSlug(slug string) (View, error) {
	switch slug {
	case "big-tables":
		return View{Kind: KindBigTables}, nil
	case "total":
		return View{Kind: KindTotal}, nil
	case "open":
		return View{Kind: KindOpen}, nil
	case "confirmed":
		return View{Kind: KindConfirmed}, nil
	case "canceled":
		return View{Kind: KindCanceled}, nil
	}
	return View{}, fmt.Errorf("unknown view %q", slug)
}

// HourRange is the drill-down from one row of the hourly table.
func HourRange(start, end time.Time) View {
	return View{Kind: KindHourRange, Start: start, End: end}
}

// Request is a resolved backend list query. DataKey names the field of the
// GraphQL response that carries the reservation list.
type Request struct {
	Query     string
	Variables map[string]any
	DataKey   string
}

// filterTimeLayout keeps date bounds in local wall-clock form. The backend
// filters on local time; converting to UTC here would shift buckets across
// the day boundary.
const filterTimeLayout = "2006-01-02T15:04:05"

// Resolve yields the query and variables for a view. Unfiltered views use
// their dedicated queries; everything else goes through the generic filtered
// query. The hour-range upper bound is end − 1s so adjacent buckets never
// overlap on an inclusive backend comparison.
func (v View) Resolve() (Request, error) {
	status := func(s model.Status) Request {
		return Request{
			Query:     QueryAllReservationWithFilter,
			Variables: map[string]any{"filter": model.ReservationFilter{Status: &s}},
			DataKey:   "getAllReservationWithFilter",
		}
	}
	switch v.Kind {
	case KindBigTables:
		return Request{Query: QueryBigReservation, DataKey: "getBigReservation"}, nil
	case KindTotal:
		return Request{Query: QueryReservationToday, DataKey: "getReservationToday"}, nil
	case KindOpen:
		return status(model.StatusOpen), nil
	case KindConfirmed:
		return status(model.StatusConfirmed), nil
	case KindCanceled:
		return status(model.StatusCanceled), nil
	case KindHourRange:
		from := v.Start.Format(filterTimeLayout)
		to := v.End.Add(-time.Second).Format(filterTimeLayout)
		return Request{
			Query:     QueryAllReservationWithFilter,
			Variables: map[string]any{"filter": model.ReservationFilter{DateFrom: &from, DateTo: &to}},
			DataKey:   "getAllReservationWithFilter",
		}, nil
	}
	return Request{}, fmt.Errorf("unknown view kind %d", v.Kind)
}

// ByID resolves a single-reservation lookup through the same filtered query.
func ByID(id string) Request {
	return Request{
		Query:     QueryAllReservationWithFilter,
		Variables: map[string]any{"filter": model.ReservationFilter{ID: &id}},
		DataKey:   "getAllReservationWithFilter",
	}
}
