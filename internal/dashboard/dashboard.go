// Package dashboard turns the backend's precomputed ReservationInfo snapshot
// into display models. No aggregation happens here: only threshold
// classification and bucket highlighting against a caller-supplied now.
package dashboard

import (
	"time"

	"github.com/CutieCat6778/reservation-frontdesk/internal/model"
)

type Severity string

const (
	SeverityGreen   Severity = "green"
	SeverityYellow  Severity = "yellow"
	SeverityRed     Severity = "red"
	SeverityNeutral Severity = "neutral"
)

type Metric string

const (
	MetricOpen      Metric = "open"
	MetricConfirmed Metric = "confirmed"
	MetricCanceled  Metric = "canceled"
	MetricTotal     Metric = "total"
	MetricPersons   Metric = "persons"
	MetricBigTables Metric = "big-tables"
)

// Per-metric display thresholds, value <= green → green, <= yellow → yellow,
// else red. Fixed constants, not runtime configuration.
var thresholds = map[Metric]struct{ green, yellow int }{
	MetricOpen:      {green: 0, yellow: 10},
	MetricConfirmed: {green: 0, yellow: 360},
	MetricCanceled:  {green: 0, yellow: 5},
}

// Classify color-codes a metric value. Metrics without thresholds are
// neutral.
func Classify(m Metric, value int) Severity {
	th, ok := thresholds[m]
	if !ok {
		return SeverityNeutral
	}
	switch {
	case value <= th.green:
		return SeverityGreen
	case value <= th.yellow:
		return SeverityYellow
	default:
		return SeverityRed
	}
}

// Highlighted reports whether now falls into the bucket's half-open
// [StartsAt, EndsAt) window.
func Highlighted(h model.InfoByHour, now time.Time) bool {
	return !now.Before(h.StartsAt) && now.Before(h.EndsAt)
}

type Card struct {
	Title    string   `json:"title"`
	Metric   Metric   `json:"metric"`
	Value    int      `json:"value"`
	Severity Severity `json:"severity"`
	Slug     string   `json:"slug,omitempty"`
}

type HourRow struct {
	model.InfoByHour
	Current bool `json:"current"`
}

type Overview struct {
	Cards []Card    `json:"cards"`
	Hours []HourRow `json:"byHours"`
}

// Render builds the stat cards and the hourly table from a snapshot. The
// caller passes now; refreshing a minute later yields the moved highlight,
// matching the old UI's 60s recompute timers.
func Render(info model.ReservationInfo, now time.Time) Overview {
	card := func(title string, m Metric, value int, slug string) Card {
		return Card{Title: title, Metric: m, Value: value, Severity: Classify(m, value), Slug: slug}
	}
	cards := []Card{
		card("Offene Reservierungen", MetricOpen, info.TotalOpenReservation, "open"),
		card("Bestätigte Reservierungen", MetricConfirmed, info.TotalConfirmedReservation, "confirmed"),
		card("Stornierte Reservierungen", MetricCanceled, info.TotalCanceledReservation, "canceled"),
		card("Gesamtreservierungen", MetricTotal, info.TotalReservation, "total"),
		card("Gesamtpersonen", MetricPersons, info.TotalPerson, ""),
		card("Große Tische (≥5)", MetricBigTables, info.TotalBigReservation, "big-tables"),
	}

	hours := make([]HourRow, 0, len(info.ByHours))
	for _, h := range info.ByHours {
		hours = append(hours, HourRow{InfoByHour: h, Current: Highlighted(h, now)})
	}
	return Overview{Cards: cards, Hours: hours}
}
