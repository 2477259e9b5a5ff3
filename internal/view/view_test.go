package view_test

import (
	"testing"
	"time"

	"github.com/CutieCat6778/reservation-frontdesk/internal/model"
	"github.com/CutieCat6778/reservation-frontdesk/internal/view"
	"github.com/stretchr/testify/require"
)

func TestParseSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		slug    string
		want    view.Kind
		wantErr bool
	}{
		{slug: "big-tables", want: view.KindBigTables},
		{slug: "total", want: view.KindTotal},
		{slug: "open", want: view.KindOpen},
		{slug: "confirmed", want: view.KindConfirmed},
		{slug: "canceled", want: view.KindCanceled},
		{slug: "declined", wantErr: true},
		{slug: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.slug, func(t *testing.T) {
			t.Parallel()
			v, err := view.ParseSlug(tt.slug)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, v.Kind)
		})
	}
}

func TestResolve_UnfilteredViews(t *testing.T) {
	t.Parallel()

	req, err := view.View{Kind: view.KindBigTables}.Resolve()
	require.NoError(t, err)
	require.Equal(t, "getBigReservation", req.DataKey)
	require.Nil(t, req.Variables)

	req, err = view.View{Kind: view.KindTotal}.Resolve()
	require.NoError(t, err)
	require.Equal(t, "getReservationToday", req.DataKey)
	require.Nil(t, req.Variables)
}

func TestResolve_StatusViews(t *testing.T) {
	t.Parallel()

	for slug, status := range map[string]model.Status{
		"open":      model.StatusOpen,
		"confirmed": model.StatusConfirmed,
		"canceled":  model.StatusCanceled,
	} {
		v, err := view.ParseSlug(slug)
		require.NoError(t, err)
		req, err := v.Resolve()
		require.NoError(t, err)
		require.Equal(t, "getAllReservationWithFilter", req.DataKey)

		filter, ok := req.Variables["filter"].(model.ReservationFilter)
		require.True(t, ok)
		require.NotNil(t, filter.Status)
		require.Equal(t, status, *filter.Status)
		require.Nil(t, filter.DateFrom)
	}
}

func TestResolve_HourRangeKeepsLocalTime(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	start := time.Date(2025, 4, 15, 18, 0, 0, 0, loc)
	end := start.Add(30 * time.Minute)

	req, err := view.HourRange(start, end).Resolve()
	require.NoError(t, err)

	filter, ok := req.Variables["filter"].(model.ReservationFilter)
	require.True(t, ok)
	require.NotNil(t, filter.DateFrom)
	require.NotNil(t, filter.DateTo)
	// local wall-clock strings, no UTC conversion, upper bound minus one second
	require.Equal(t, "2025-04-15T18:00:00", *filter.DateFrom)
	require.Equal(t, "2025-04-15T18:29:59", *filter.DateTo)
}

func TestByID(t *testing.T) {
	t.Parallel()

	req := view.ByID("res-42")
	require.Equal(t, "getAllReservationWithFilter", req.DataKey)
	filter, ok := req.Variables["filter"].(model.ReservationFilter)
	require.True(t, ok)
	require.NotNil(t, filter.ID)
	require.Equal(t, "res-42", *filter.ID)
}
