package session

import "errors"

var (
	// ErrInvalidURL means the quiz link has no /quiz/<courseCode> segment
	// or carries malformed parameters.
	ErrInvalidURL = errors.New("invalid quiz link")

	// ErrEmptySelection means the request yields no questions to ask.
	ErrEmptySelection = errors.New("no questions match the selection")

	// ErrValidation means Advance was called before an answer was selected.
	ErrValidation = errors.New("select an answer before continuing")

	// ErrSubmitted means the operation is only valid while answering.
	ErrSubmitted = errors.New("session already submitted")

	// ErrUnknownOption means the selected text is not one of the options.
	ErrUnknownOption = errors.New("not an option for this question")
)
