package textutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecodeEscapes(t *testing.T) {
	require.Equal(t, "Systems Programming & Design", DecodeEscapes("Systems Programming &amp; Design"))
	require.Equal(t, "O'Neill", DecodeEscapes("O&#39;Neill"))
	require.Equal(t, "", DecodeEscapes(""))
	require.Equal(t, "plain text", DecodeEscapes("plain text"))
}

func TestParseInt(t *testing.T) {
	require.Equal(t, int64(202409), ParseInt("202409", 0))
	require.Equal(t, int64(202409), ParseInt(" 202409 ", 0))
	require.Equal(t, int64(-1), ParseInt("garbage", -1))
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

	for _, value := range []string{"09/01/2024", "Sep 1, 2024", "2024-09-01"} {
		got, err := ParseDate(value)
		require.NoError(t, err, value)
		require.Equal(t, want, got)
	}

	_, err := ParseDate("yesterday")
	require.Error(t, err)
}
