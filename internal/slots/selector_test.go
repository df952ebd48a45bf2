package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MediCare-Gateway/internal/domain"
	"github.com/m04kA/MediCare-Gateway/pkg/types"
)

func TestAvailableDates_Scenario(t *testing.T) {
	input := []domain.TimeSlot{
		{Date: "2024-01-02", Time: "09:00 AM", Available: true},
		{Date: "2024-01-02", Time: "10:00 AM", Available: false},
		{Date: "2024-01-03", Time: "09:00 AM", Available: true},
	}

	dates, err := AvailableDates(input)

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03"}, dates)
}

func TestAvailableDates_SkipsDatesWithoutAvailableSlots(t *testing.T) {
	input := []domain.TimeSlot{
		{Date: "2024-01-02", Time: "09:00 AM", Available: false},
		{Date: "2024-01-03", Time: "09:00 AM", Available: false},
		{Date: "2024-01-03", Time: "02:00 PM", Available: true},
	}

	dates, err := AvailableDates(input)

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-03"}, dates)
}

func TestAvailableDates_Properties(t *testing.T) {
	ref := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	for seed := int64(0); seed < 50; seed++ {
		input := Generate(ref, NewLockedSource(seed))

		dates, err := AvailableDates(input)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(dates), domain.MaxDisplayDates)

		for i := 1; i < len(dates); i++ {
			assert.Less(t, dates[i-1], dates[i], "dates must be chronological and distinct")
		}

		for _, d := range dates {
			got, err := SlotsForDate(input, d)
			require.NoError(t, err)
			assert.NotEmpty(t, got, "date %s returned without available slot", d)
		}
	}
}

func TestAvailableDates_CapsAtFive(t *testing.T) {
	input := make([]domain.TimeSlot, 0)
	for day := 1; day <= 7; day++ {
		date := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC).Format(domain.DateFormat)
		input = append(input, domain.TimeSlot{Date: date, Time: "09:00 AM", Available: true})
	}

	dates, err := AvailableDates(input)

	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}, dates)
}

func TestAvailableDates_Empty(t *testing.T) {
	dates, err := AvailableDates(nil)

	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestSlotsForDate(t *testing.T) {
	input := Generate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), NewSequenceSource(0.9, 0.1))

	got, err := SlotsForDate(input, "2024-01-03")

	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, s := range got {
		assert.Equal(t, "2024-01-03", s.Date)
		assert.True(t, s.Available)
		if i > 0 {
			prev, perr := time.Parse(types.TimeLabelLayout, got[i-1].Time.String())
			require.NoError(t, perr)
			cur, cerr := time.Parse(types.TimeLabelLayout, s.Time.String())
			require.NoError(t, cerr)
			assert.True(t, prev.Before(cur), "time-ascending order")
		}
	}
	assert.Equal(t, "09:00 AM", got[0].Time.String())
	assert.Equal(t, "11:00 AM", got[1].Time.String())
	assert.Equal(t, "03:00 PM", got[2].Time.String())
}

func TestSlotsForDate_NoSlots(t *testing.T) {
	input := Generate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ConstantSource(0))

	got, err := SlotsForDate(input, "2024-01-02")
	require.NoError(t, err)
	assert.Empty(t, got)

	outside, err := SlotsForDate(input, "2030-01-01")
	require.NoError(t, err)
	assert.Empty(t, outside)
}

func TestSelector_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		slots []domain.TimeSlot
		date  string
	}{
		{name: "bad slot date", slots: []domain.TimeSlot{{Date: "02-01-2024", Time: "09:00 AM"}}, date: "2024-01-02"},
		{name: "unknown label", slots: []domain.TimeSlot{{Date: "2024-01-02", Time: "05:00 AM"}}, date: "2024-01-02"},
		{name: "bad requested date", slots: nil, date: "13-2025-01"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := SlotsForDate(c.slots, c.date)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := AvailableDates([]domain.TimeSlot{{Date: "", Time: "09:00 AM", Available: true}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
