package voice

import (
	"fmt"
	"strings"

	"github.com/panasi/panasi/timer"
)

const (
	msgPausedAll     = "🛑 すべてのタイマーを停止しました"
	msgDeletedAll    = "🗑️ すべてのタイマーを終了しました"
	msgNothingToDrop = "削除するタイマーがありません"
	msgNoTimers      = "現在動作中のタイマーはありません"

	msgMoved    = "%sのタイマーを一番上に移動しました"
	msgNotFound = "%sのタイマーが見つかりません"

	msgPaused    = "%sのタイマーを停止しました"
	msgResumed   = "%sのタイマーを再開しました"
	msgCompleted = "%sのタイマーを完了しました"
	msgStarted   = "%sの%sを%d分でスタートしました"

	msgPartialNumber  = "%s分を確認しました。パン名と工程名も教えてください"
	msgPartialBread   = "%sを確認しました。工程名と時間も教えてください"
	msgPartialProcess = "%sを確認しました。パン名と時間も教えてください"

	msgNotUnderstood = "「%s」を理解できませんでした。例：「食パン一次発酵40分」"
)

// Examples are shown to users who have not issued a command yet.
var Examples = []string{
	"食パン一次発酵40分スタート",
	"食パン止めて",
	"食パン再開",
	"食パン完了",
	"タイマー設定",
	"残り時間は？",
	"すべて停止",
}

// DefaultBreads are the bread names recognized on their own.
var DefaultBreads = []string{
	"食パン",
	"クロワッサン",
	"バゲット",
	"メロンパン",
	"ロールパン",
	"フランスパン",
}

// DefaultProcesses are the process names recognized on their own.
var DefaultProcesses = []string{
	"一次発酵",
	"二次発酵",
	"発酵",
	"こね",
	"成形",
	"焼成",
}

// statusReport summarizes every timer, running ones individually.
func statusReport(views []timer.View) string {
	if len(views) == 0 {
		return msgNoTimers
	}

	var running, paused, completed []timer.View

	for _, v := range views {
		switch v.Status {
		case timer.Running:
			running = append(running, v)
		case timer.Paused:
			paused = append(paused, v)
		case timer.Completed:
			completed = append(completed, v)
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "タイマーは合計%d個です。", len(views))

	if len(running) > 0 {
		fmt.Fprintf(&b, " 動作中%d個。", len(running))

		for _, v := range running {
			fmt.Fprintf(&b, " %s、あと%d分。", v.Title(), v.MinutesLeft())
		}
	}

	if len(paused) > 0 {
		fmt.Fprintf(&b, " 一時停止中%d個。", len(paused))
	}

	if len(completed) > 0 {
		fmt.Fprintf(&b, " 完了%d個。", len(completed))
	}

	return b.String()
}

// timerReport describes one timer.
func timerReport(v timer.View) string {
	switch v.Status {
	case timer.Completed:
		return v.Title() + "は完了しています"
	case timer.Paused:
		return fmt.Sprintf("%sは一時停止中で、残り%d分です", v.Title(), v.MinutesLeft())
	}

	return fmt.Sprintf("%sはあと%d分です", v.Title(), v.MinutesLeft())
}
