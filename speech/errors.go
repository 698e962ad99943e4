package speech

import (
	"errors"

	"github.com/panasi/panasi/internal/apperr"
)

// Recognizer failures. The messages are shown to the user as is.
var (
	ErrNoSpeech = &apperr.Error{
		Message: "音声が検出されませんでした",
	}

	ErrAborted = &apperr.Error{
		Message: "音声認識が中断されました",
	}

	ErrAudioCapture = &apperr.Error{
		Message: "マイクにアクセスできません",
	}

	ErrNetwork = &apperr.Error{
		Message: "ネットワークエラーが発生しました",
	}

	ErrNotAllowed = &apperr.Error{
		Message: "マイクへのアクセスが拒否されました",
	}

	ErrServiceNotAllowed = &apperr.Error{
		Message: "音声認識サービスが利用できません",
	}

	ErrBadGrammar = &apperr.Error{
		Message: "音声認識の設定にエラーがあります",
	}

	ErrLanguageNotSupported = &apperr.Error{
		Message: "指定された言語がサポートされていません",
	}

	// ErrClosed means the input source is exhausted and no further session
	// can be started.
	ErrClosed = &apperr.Error{
		Message: "音声入力が終了しました",
	}

	errUnknown = &apperr.Error{
		Message: "音声認識エラー: %s",
	}
)

// Recoverable reports whether a new session should be started after err.
func Recoverable(err error) bool {
	return errors.Is(err, ErrNoSpeech) ||
		errors.Is(err, ErrAborted) ||
		errors.Is(err, ErrNetwork)
}

// Denied reports whether err means the user or the platform refused access
// to the microphone or the recognition service.
func Denied(err error) bool {
	return errors.Is(err, ErrNotAllowed) ||
		errors.Is(err, ErrServiceNotAllowed)
}

// Message returns the text shown to the user for a recognizer failure.
func Message(err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return errUnknown.Fmt(err).Message
}
