package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/panasi/panasi/timer"
	"github.com/panasi/panasi/voice"
)

func TestOutcome(t *testing.T) {
	testCases := []struct {
		Name string
		Want string
		Out  voice.Outcome
	}{
		{
			Name: "display text wins",
			Out: voice.Outcome{
				DisplayText: "食パンの一次発酵を40分でスタートしました",
				SpokenText:  "スタートしました",
				Matched:     true,
			},
			Want: "食パンの一次発酵を40分でスタートしました",
		},
		{
			Name: "spoken only",
			Out:  voice.Outcome{SpokenText: "あと5分です", Matched: true},
			Want: "あと5分です",
		},
		{
			Name: "unmatched",
			Out:  voice.Outcome{DisplayText: "「こんにちは」を理解できませんでした"},
			Want: "「こんにちは」を理解できませんでした",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var out bytes.Buffer

			Outcome(&out, tc.Out)

			assert.Contains(t, out.String(), tc.Want)
		})
	}

	var out bytes.Buffer

	Outcome(&out, voice.Outcome{Matched: true})
	assert.Empty(t, out.String())
}

func TestTimerAdded(t *testing.T) {
	var out bytes.Buffer

	TimerAdded(&out, timer.View{ID: 3, BreadName: "バゲット", ProcessName: "焼成", Duration: 25})

	assert.Contains(t, out.String(), "バゲットの焼成 (#3) を25分でスタートしました")
}
