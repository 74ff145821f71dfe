package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityOrdinalRoundTrip(t *testing.T) {
	for i, p := range Priorities {
		assert.Equal(t, i, p.Ordinal())
		assert.Equal(t, p, PriorityFromOrdinal(p.Ordinal()))
	}
}

func TestStatusOrdinalRoundTrip(t *testing.T) {
	for i, s := range Statuses {
		assert.Equal(t, i, s.Ordinal())
		assert.Equal(t, s, StatusFromOrdinal(s.Ordinal()))
	}
}

func TestFromOrdinal_Lenient(t *testing.T) {
	for _, n := range []int{-1, 3, 99, -2147483648} {
		assert.Equal(t, PriorityLow, PriorityFromOrdinal(n), "priority %d", n)
		assert.Equal(t, StatusNotStarted, StatusFromOrdinal(n), "status %d", n)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input string
		want  Priority
	}{
		{"High", PriorityHigh},
		{"high", PriorityHigh},
		{"  MEDIUM ", PriorityMedium},
		{"Low", PriorityLow},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"NotStarted", StatusNotStarted},
		{"not started", StatusNotStarted},
		{"not_started", StatusNotStarted},
		{"InProgress", StatusInProgress},
		{"in-progress", StatusInProgress},
		{"Completed", StatusCompleted},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParse_StrictFailure(t *testing.T) {
	_, err := ParsePriority("urgent")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "priority", perr.Kind)
	assert.Equal(t, "urgent", perr.Input)
	assert.Equal(t, `invalid priority "urgent"`, err.Error())

	_, err = ParseStatus("")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "status", perr.Kind)

	_, err = ParseStatus("done")
	assert.Error(t, err)
}

func TestEnumString(t *testing.T) {
	assert.Equal(t, "High", PriorityHigh.String())
	assert.Equal(t, "Low", Priority(42).String())
	assert.Equal(t, "In Progress", StatusInProgress.String())
	assert.Equal(t, "Not Started", Status(-1).String())
}

func TestParseAcceptsString(t *testing.T) {
	for _, p := range Priorities {
		got, err := ParsePriority(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	for _, s := range Statuses {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
