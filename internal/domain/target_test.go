package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInYear(t *testing.T) {
	cases := []struct {
		year int
		want int
	}{
		{2023, 365},
		{2024, 366},
		{1900, 365},
		{2000, 366},
		{2100, 365},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DaysInYear(tc.year), "year=%d", tc.year)
	}
}

func TestNewTarget_Daily(t *testing.T) {
	tgt, err := NewTarget(TargetDaily, 50, 2023)
	require.NoError(t, err)
	assert.Equal(t, TargetDaily, tgt.Mode)
	assert.Equal(t, 50, tgt.Daily)
	assert.Equal(t, 1500, tgt.Monthly)
	assert.Equal(t, 18250, tgt.Yearly)
}

func TestNewTarget_DailyLeapYear(t *testing.T) {
	tgt, err := NewTarget(TargetDaily, 50, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1500, tgt.Monthly)
	assert.Equal(t, 18300, tgt.Yearly)
}

func TestNewTarget_MonthlyRoundsDailyUp(t *testing.T) {
	tgt, err := NewTarget(TargetMonthly, 1000, 2023)
	require.NoError(t, err)
	assert.Equal(t, 1000, tgt.Monthly, "authoritative value is kept as entered")
	assert.Equal(t, 34, tgt.Daily)
	assert.Equal(t, 34*365, tgt.Yearly)
	assert.Equal(t, 1000, tgt.Value())
}

func TestNewTarget_YearlyRoundsDailyUp(t *testing.T) {
	tgt, err := NewTarget(TargetYearly, 10000, 2024)
	require.NoError(t, err)
	assert.Equal(t, 10000, tgt.Yearly)
	assert.Equal(t, 28, tgt.Daily) // ceil(10000/366)
	assert.Equal(t, 28*30, tgt.Monthly)
}

func TestNewTarget_Invalid(t *testing.T) {
	_, err := NewTarget(TargetDaily, 0, 2024)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = NewTarget(TargetMonthly, -5, 2024)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = NewTarget(TargetMode("weekly"), 10, 2024)
	assert.ErrorIs(t, err, ErrInvalidTargetMode)
}

func TestDefaultTarget(t *testing.T) {
	tgt := DefaultTarget()
	assert.Equal(t, TargetDaily, tgt.Mode)
	assert.Equal(t, 108, tgt.Daily)
	assert.Equal(t, 3240, tgt.Monthly)
	assert.Equal(t, 39420, tgt.Yearly)
}

func TestParseTargetMode(t *testing.T) {
	m, err := ParseTargetMode("yearly")
	require.NoError(t, err)
	assert.Equal(t, TargetYearly, m)

	_, err = ParseTargetMode("Weekly")
	assert.ErrorIs(t, err, ErrInvalidTargetMode)
}
