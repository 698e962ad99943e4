package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStr(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	got, err := FromStr("10 minutes ago", now)
	require.NoError(t, err)
	assert.True(t, got.Equal(now.Add(-10*time.Minute)), got)

	_, err = FromStr("   ", now)
	assert.ErrorIs(t, err, errEmptyTime)

	_, err = FromStr("in 2 hours", now)
	assert.ErrorIs(t, err, errFutureTime)

	_, err = FromStr("not a time at all", now)
	assert.ErrorIs(t, err, errUnparsableTime)
}
