package notify

import "github.com/panasi/panasi/internal/apperr"

var (
	errSpeakerInit = &apperr.Error{
		Message: "unable to open the audio device",
	}

	errTone = &apperr.Error{
		Message: "unable to generate a %vHz tone: %v",
	}
)
