package strava

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActivity_Field(t *testing.T) {
	a := Activity{
		"name":        "Lunch Ride",
		"distance":    json.Number("12000.5"),
		"moving_time": json.Number("3600"),
		"elev":        42.0,
		"private":     false,
		"gear_id":     nil,
	}

	name, ok := a.Name()
	require.True(t, ok)
	require.Equal(t, "Lunch Ride", name)

	distance, ok := a.Distance()
	require.True(t, ok)
	require.Equal(t, "12000.5", distance)

	elev, ok := a.Field("elev")
	require.True(t, ok)
	require.Equal(t, "42", elev)

	private, ok := a.Field("private")
	require.True(t, ok)
	require.Equal(t, "false", private)

	gear, ok := a.Field("gear_id")
	require.True(t, ok)
	require.Empty(t, gear)

	_, ok = a.Type()
	require.False(t, ok)

	moving, ok := a.MovingTime()
	require.True(t, ok)
	require.Equal(t, int64(3600), moving)
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Err: ErrActivitiesRequest, StatusCode: 429, Body: "slow down"}
	require.Equal(t, "activities request failed: 429 Too Many Requests - slow down", err.Error())
	require.ErrorIs(t, err, ErrActivitiesRequest)
	require.NotErrorIs(t, err, ErrTokenRequest)
}
