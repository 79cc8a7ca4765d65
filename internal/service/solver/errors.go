package solver

import (
	"errors"
	"strings"
)

// FailureMessage is shown to the user whenever a solve fails.
const FailureMessage = "Impossible de résoudre cette équation pour le moment. Vérifiez la syntaxe."

// FallbackMessage is used when an error carries no text at all.
const FallbackMessage = "Une erreur inconnue est survenue."

var (
	ErrEmptyResponse     = errors.New("empty response from model")
	ErrMalformedResponse = errors.New("malformed response from model")
	ErrInputTooLong      = errors.New("equation exceeds input token limit")
)

// SolveError carries the message shown to the user next to the cause.
type SolveError struct {
	Message string
	Err     error
}

func (e *SolveError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *SolveError) Unwrap() error { return e.Err }

func newSolveError(err error) *SolveError {
	msg := FailureMessage
	if errors.Is(err, ErrInputTooLong) {
		msg = "L'équation est trop longue."
	}
	return &SolveError{Message: msg, Err: err}
}

// UserMessage returns the text to show for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *SolveError
	if errors.As(err, &se) && strings.TrimSpace(se.Message) != "" {
		return se.Message
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return FallbackMessage
}
