// Package dialog implements the guided, multi-turn timer creation
// conversation.
package dialog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/panasi/panasi/timer"
)

// State is the step a conversation is waiting on.
type State string

const (
	None                State = "none"
	WaitingBread        State = "waiting_bread"
	WaitingProcess      State = "waiting_process"
	WaitingDuration     State = "waiting_duration"
	WaitingConfirmation State = "waiting_confirmation"
)

// Data is what the conversation has collected so far. Fields are filled in
// order: bread, process, then duration.
type Data struct {
	BreadName   string `json:"breadName,omitempty"`
	ProcessName string `json:"processName,omitempty"`
	Minutes     int    `json:"duration,omitempty"`
}

// Conversation is the single active dialog. The zero value is inactive.
type Conversation struct {
	ID    string `json:"id,omitempty"`
	State State  `json:"state"`
	Data  Data   `json:"data"`
}

// Active reports whether the conversation is waiting for an answer.
func (c Conversation) Active() bool {
	return c.State != "" && c.State != None
}

// Action is a side effect the caller must carry out after a step.
type Action int

const (
	// NoAction means the step only changed state or re-prompted.
	NoAction Action = iota
	// CreateTimer asks the caller to create a timer from Step.Data.
	CreateTimer
	// Cancel means the user declined the summary.
	Cancel
)

// Step is the outcome of advancing a conversation by one utterance.
type Step struct {
	Next Conversation
	// Data is the collected input for a CreateTimer action
	Data    Data
	Display string
	Prompt  string
	Action  Action
}

const (
	startDisplay = "タイマー設定を開始します"
	breadPrompt  = "どのパンのタイマーを設定しますか？例：食パン、メロンパン、クロワッサンなど"

	processPrompt  = "どのような工程ですか？例：一次発酵、二次発酵、焼き上げなど"
	durationPrompt = "何分のタイマーですか？数字のみ答えてください"
	durationRetry  = "数字が聞き取れませんでした。もう一度時間を数字で答えてください"

	confirmFormat = "%sの%s、%d分のタイマーを設定します。よろしいですか？"
	confirmPrompt = "よろしければ「はい」または「OK」と答えてください。やり直す場合は「いいえ」と答えてください"
	confirmRetry  = "「はい」「OK」で決定、「いいえ」「キャンセル」でやり直しになります"

	cancelDisplay = "タイマー設定をキャンセルしました"
	cancelPrompt  = "タイマー設定をキャンセルしました。また必要な時に「タイマー設定」と言ってください"
)

var (
	digits = regexp.MustCompile(`\d+`)

	positive = regexp.MustCompile(
		`(?i)はい|ハイ|イエス|yes|ok|オーケー|おーけー|オッケー|いいです|良いです|大丈夫|よろしい|宜しい|了解|決定|セット|set|確定`,
	)

	negative = regexp.MustCompile(
		`(?i)いいえ|ノー|no|だめ|やめ|キャンセル|取り消し|やり直し|違う|ちがう`,
	)
)

// Start begins a new conversation, replacing any that is in progress.
func Start() Step {
	return Step{
		Next: Conversation{
			ID:    uuid.NewString(),
			State: WaitingBread,
		},
		Display: startDisplay,
		Prompt:  breadPrompt,
	}
}

// Advance feeds one utterance to the conversation. raw is the utterance with
// its spacing and compact is the same text without whitespace.
func Advance(c Conversation, raw, compact string) Step {
	raw = strings.TrimSpace(raw)

	switch c.State {
	case WaitingBread:
		c.Data.BreadName = raw
		c.State = WaitingProcess

		return Step{
			Next:    c,
			Display: raw + "ですね",
			Prompt:  processPrompt,
		}

	case WaitingProcess:
		c.Data.ProcessName = raw
		c.State = WaitingDuration

		return Step{
			Next:    c,
			Display: raw + "ですね",
			Prompt:  durationPrompt,
		}

	case WaitingDuration:
		n, err := strconv.Atoi(digits.FindString(compact))
		if err != nil || !timer.ValidMinutes(n) {
			return Step{Next: c, Prompt: durationRetry}
		}

		c.Data.Minutes = n
		c.State = WaitingConfirmation

		return Step{
			Next: c,
			Display: fmt.Sprintf(
				confirmFormat,
				c.Data.BreadName,
				c.Data.ProcessName,
				n,
			),
			Prompt: confirmPrompt,
		}

	case WaitingConfirmation:
		switch {
		case positive.MatchString(raw) || positive.MatchString(compact):
			return Step{
				Next:   Conversation{State: None},
				Data:   c.Data,
				Action: CreateTimer,
			}

		case negative.MatchString(raw) || negative.MatchString(compact):
			return Step{
				Next:    Conversation{State: None},
				Display: cancelDisplay,
				Prompt:  cancelPrompt,
				Action:  Cancel,
			}
		}

		return Step{Next: c, Prompt: confirmRetry}
	}

	return Step{Next: Conversation{State: None}}
}

// Created returns the announcement for a timer created by a conversation.
func Created(d Data) string {
	return fmt.Sprintf(
		"%sの%s、%d分のタイマーを開始しました！",
		d.BreadName,
		d.ProcessName,
		d.Minutes,
	)
}
