package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panasi/panasi/timer"
)

func TestTimerRows(t *testing.T) {
	views := []timer.View{
		{
			ID:          1,
			BreadName:   "食パン",
			ProcessName: "一次発酵",
			Duration:    40,
			Status:      timer.Running,
			Remaining:   30 * time.Minute,
			Progress:    0.25,
		},
		{
			ID:          2,
			BreadName:   "バゲット",
			ProcessName: "焼成",
			Duration:    25,
			Status:      timer.Completed,
			Progress:    1,
		},
	}

	rows := TimerRows(views)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"1", "食パン", "一次発酵", "40分"}, rows[1][:4])
	assert.Contains(t, rows[1][4], "00:30:00")
	assert.Equal(t, " 25%", rows[1][5])
	assert.Contains(t, rows[1][6], "実行中")
	assert.Contains(t, rows[2][6], "完了")

	var buf bytes.Buffer

	PrintTable(rows, &buf)
	assert.Contains(t, buf.String(), "バゲット")
}
