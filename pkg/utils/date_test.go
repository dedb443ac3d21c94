package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected *time.Time
		wantErr  bool
	}{
		{name: "RFC3339", value: "2024-03-01T02:17:21Z", expected: ptr(time.Date(2024, 3, 1, 2, 17, 21, 0, time.UTC))},
		{name: "Apenas data", value: "2024-03-01", expected: ptr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))},
		{name: "Vazio", value: "", expected: nil},
		{name: "Inválido", value: "ontem", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimestamp(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}
			assert.True(t, tt.expected.Equal(*result))
		})
	}
}

func TestEndOfDay(t *testing.T) {
	end := EndOfDay(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 3, 1, 23, 59, 59, 999999999, time.UTC), end)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 21.33, RoundWithTwoDecimalPlace(64.0/3))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	require.NoError(t, err)
	assert.Len(t, id, idLength)
}

func ptr(t time.Time) *time.Time {
	return &t
}
