package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUtterance(t *testing.T) {
	testCases := []struct {
		Name    string
		Input   string
		Raw     string
		Compact string
		Folded  string
	}{
		{
			Name:    "spaces are removed from the compact form",
			Input:   "  食パン 一次発酵 40分 ",
			Raw:     "食パン 一次発酵 40分",
			Compact: "食パン一次発酵40分",
			Folded:  "食パン一次発酵40分",
		},
		{
			Name:    "ideographic space",
			Input:   "メロンパン　焼成",
			Compact: "メロンパン焼成",
			Folded:  "メロンパン焼成",
		},
		{
			Name:    "full-width digits",
			Input:   "食パン４０分",
			Raw:     "食パン40分",
			Compact: "食パン40分",
			Folded:  "食パン40分",
		},
		{
			Name:    "half-width katakana",
			Input:   "ﾀｲﾏｰ設定",
			Raw:     "タイマー設定",
			Compact: "タイマー設定",
			Folded:  "タイマー設定",
		},
		{
			Name:    "stop synonyms",
			Input:   "ぜんぶ ストップ",
			Raw:     "ぜんぶ ストップ",
			Compact: "ぜんぶストップ",
			Folded:  "すべて停止",
		},
		{
			Name:    "english words",
			Input:   "Timer CLEAR",
			Raw:     "Timer CLEAR",
			Compact: "TimerCLEAR",
			Folded:  "タイマー終了",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			u := NewUtterance(tc.Input)

			if tc.Raw != "" {
				assert.Equal(t, tc.Raw, u.Raw)
			}

			assert.Equal(t, tc.Compact, u.Compact)
			assert.Equal(t, tc.Folded, u.Folded)
		})
	}
}
