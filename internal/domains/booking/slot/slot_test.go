package slot_test

import (
	"bloom/internal/domains/booking/model"
	"bloom/internal/domains/booking/slot"
	"bloom/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "en dash with spaces", input: "10:00 – 11:00", want: "10:00-11:00"},
		{name: "plain hyphen", input: "10:00-11:00", want: "10:00-11:00"},
		{name: "padded and doubled spaces", input: " 10:00 -  11:00 ", want: "10:00-11:00"},
		{name: "tabs and newlines", input: "10:00\t–\n11:00", want: "10:00-11:00"},
		{name: "every en dash replaced", input: "10:00–11:00–12:00", want: "10:00-11:00-12:00"},
		{name: "inner words keep single space", input: "Sesi   Pagi  09:00", want: "Sesi Pagi 09:00"},
		{name: "nil cell", input: nil, want: ""},
		{name: "numeric cell", input: 10.5, want: "10.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.NormalizeTime(tt.input))
		})
	}
}

func TestNormalizeTimeEquivalentForms(t *testing.T) {
	a := slot.NormalizeTime("10:00 – 11:00")
	b := slot.NormalizeTime("10:00-11:00")
	c := slot.NormalizeTime(" 10:00 -  11:00 ")

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestNormalizeDate(t *testing.T) {
	require.NoError(t, timezone.Set("Asia/Jakarta"))
	t.Cleanup(func() { _ = timezone.Set("UTC") })

	midnightJakarta := time.Date(2024, 6, 1, 0, 0, 0, 0, timezone.GetLocation())
	lateUTC := time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "string is trimmed", input: "  2024-06-01 ", want: "2024-06-01"},
		{name: "native date in app zone", input: midnightJakarta, want: "2024-06-01"},
		{name: "native date converted to app zone", input: lateUTC, want: "2024-06-01"},
		{name: "pointer to time", input: &midnightJakarta, want: "2024-06-01"},
		{name: "nil pointer", input: (*time.Time)(nil), want: ""},
		{name: "nil", input: nil, want: ""},
		{name: "free text kept", input: "besok pagi", want: "besok pagi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.NormalizeDate(tt.input))
		})
	}
}

func TestOf(t *testing.T) {
	require.NoError(t, timezone.Set("UTC"))

	row := make(model.Row, model.ColumnCount)
	row[model.ColDate] = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	row[model.ColTime] = "10:00 – 11:00"

	date, clock := slot.Of(row)

	assert.Equal(t, "2024-06-01", date)
	assert.Equal(t, "10:00-11:00", clock)
	assert.Equal(t, "2024-06-01|10:00-11:00", slot.Key(date, clock))
}

func TestOfShortRow(t *testing.T) {
	date, clock := slot.Of(model.Row{"only timestamp"})

	assert.Empty(t, date)
	assert.Empty(t, clock)
}
