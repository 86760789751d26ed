package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a session id has no state.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionEnded is returned when a turn is submitted to a
	// terminated session.
	ErrSessionEnded = errors.New("session ended")
	// ErrEmptyTranscript is returned when feedback is requested for a
	// session without any messages.
	ErrEmptyTranscript = errors.New("transcript is empty")
)
