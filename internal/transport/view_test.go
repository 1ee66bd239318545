package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatKm(t *testing.T) {
	require.Equal(t, "5.01 km", formatKm("5012.3"))
	require.Equal(t, "0.00 km", formatKm("0.0"))
	require.Equal(t, "42.20 km", formatKm("42195"))
	require.Equal(t, "far", formatKm("far"))
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "0:00:59", formatDuration(59))
	require.Equal(t, "1:02:03", formatDuration(3723))
	require.Equal(t, "0:00:00", formatDuration(-5))
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "2024-05-01 07:30", formatDate("2024-05-01T07:30:00Z"))
	require.Equal(t, "yesterday", formatDate("yesterday"))
}
