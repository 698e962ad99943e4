package timer

import "github.com/panasi/panasi/internal/apperr"

var (
	// ErrInvalidTimer is returned when a timer is created without a bread
	// name, a process name or a duration between 1 and MaxMinutes.
	ErrInvalidTimer = &apperr.Error{
		Message: "すべての項目を正しく入力してください",
	}

	// ErrNoTimers means there is nothing in the registry to act on.
	ErrNoTimers = &apperr.Error{
		Message: "停止するタイマーがありません",
	}

	// ErrNoneRunning means timers exist but none of them is running.
	ErrNoneRunning = &apperr.Error{
		Message: "実行中のタイマーがありません",
	}

	// ErrNotFound is returned when no timer has the requested ID.
	ErrNotFound = &apperr.Error{
		Message: "timer %d not found",
	}

	errInvalidSnapshot = &apperr.Error{
		Message: "invalid snapshot: timer %d has %s",
	}
)
