package catalogstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeekdayRoundTrip(t *testing.T) {
	for mask := int64(0); mask < 128; mask++ {
		require.Equal(t, mask, EncodeWeekdays(DecodeWeekdays(mask)))
	}
}

func TestWeekdayBitOrder(t *testing.T) {
	require.Equal(t, int64(1), EncodeWeekdays(WeekdayFlags{Monday: true}))
	require.Equal(t, int64(64), EncodeWeekdays(WeekdayFlags{Sunday: true}))
	require.Equal(t, int64(0b0010101), EncodeWeekdays(WeekdayFlags{
		Monday:    true,
		Wednesday: true,
		Friday:    true,
	}))
}
