package post

import "errors"

var (
	ErrEmptyContent   = errors.New("content cannot be empty")
	ErrContentTooLong = errors.New("content cannot exceed 255 characters")
	ErrNotEmoji       = errors.New("content must contain only emojis")
	ErrNumericOnly    = errors.New("content cannot be numbers only")
	ErrPostNotFound   = errors.New("post not found")
)
