package domain

import "errors"

var (
	ErrUnauthorized = errors.New("invalid API key")

	ErrEmptyTopic   = errors.New("topic cannot be empty")
	ErrEmptyContent = errors.New("content cannot be empty")
)
