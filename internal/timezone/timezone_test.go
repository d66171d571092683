package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocationFallback(t *testing.T) {
	require.Equal(t, "Europe/Madrid", Location("Europe/Madrid").String())
	require.Equal(t, DefaultTimezone, Location("").String())
	require.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	require.False(t, IsValid(""))
	require.False(t, IsValid("Mars/Olympus"))
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("UTC", "2024-06-11", "16:30")
	require.NoError(t, err)
	require.True(t, got.Equal(time.Date(2024, 6, 11, 16, 30, 0, 0, time.UTC)))

	sp, err := ParseDateTime("America/Sao_Paulo", "2024-06-11", "16:30")
	require.NoError(t, err)
	require.True(t, sp.Equal(time.Date(2024, 6, 11, 19, 30, 0, 0, time.UTC)))

	_, err = ParseDateTime("UTC", "11/06/2024", "16:30")
	require.Error(t, err)
	_, err = ParseDateTime("UTC", "2024-06-11", "25:00")
	require.Error(t, err)
}
