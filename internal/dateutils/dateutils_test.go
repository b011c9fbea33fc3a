package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"ISO date", "2024-03-15", "2024-03-15", false},
		{"full timestamp", "2024-03-15 14:30:00", "2024-03-15", false},
		{"European", "15.03.2024", "2024-03-15", false},
		{"US slash", "03/15/2024", "2024-03-15", false},
		{"month name", "Mar 15, 2024", "2024-03-15", false},
		{"padded", "  2024-03-15  ", "2024-03-15", false},
		{"garbage", "not a date", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ToISODate(parsed))
		})
	}
}

func TestMonthKey(t *testing.T) {
	date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03", MonthKey(date))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "Jan 2, 2006", CleanDateString("  Jan   2,  2006  "))
	assert.Equal(t, "2024-03-15", CleanDateString("2024-03-15"))
}
