package chat

import "errors"

var (
	ErrEmptyMessage            = errors.New("message is empty")
	ErrAssistantUnavailable    = errors.New("assistant service unavailable")
	ErrMalformedAssistantReply = errors.New("malformed assistant reply")
)
