package services

import "errors"

// Sentinel errors surfaced to handlers. NotFound-style errors map to 404,
// invariant violations to 400; anything else is a 500.
var (
	ErrPostNotFound   = errors.New("post not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrChatNotFound   = errors.New("chat not found")
	ErrNotParticipant = errors.New("not a participant of this chat")
	ErrSelfFollow     = errors.New("cannot follow yourself")
	ErrEmptyGroup     = errors.New("group chats need a name and at least two participants")
	ErrInvalidType    = errors.New("invalid content type")
)
