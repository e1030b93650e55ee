package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestamp_RoundTrip(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 3, 9, 17, 4, 5, 0, time.UTC)

	formatted := FormatTimestamp(at)
	req.Equal("2024-03-09 17:04:05", formatted)

	parsed, err := ParseTimestamp(formatted)
	req.NoError(err)
	req.True(at.Equal(parsed))
	req.Equal(time.UTC, parsed.Location())
}

func TestFormatTimestamp_ConvertsToUTC(t *testing.T) {
	req := require.New(t)
	paris := time.FixedZone("CET", 3600)
	at := time.Date(2024, 3, 9, 18, 0, 0, 0, paris)

	req.Equal("2024-03-09 17:00:00", FormatTimestamp(at))
}

func TestParseTimestamp_RejectsOtherLayouts(t *testing.T) {
	req := require.New(t)
	for _, raw := range []string{"", "2024-03-09T17:04:05Z", "not a date", "2024-03-09"} {
		_, err := ParseTimestamp(raw)
		req.Error(err, raw)
	}
}

func TestNow_SecondPrecision(t *testing.T) {
	req := require.New(t)
	now := Now()
	req.Zero(now.Nanosecond())
	req.Equal(time.UTC, now.Location())
}

func TestTextLength_CountsRunes(t *testing.T) {
	req := require.New(t)
	req.Equal(5, TextLength("héllo"))
	req.Equal(MaxTextLength, TextLength(strings.Repeat("é", MaxTextLength)))
}
