package models

import "errors"

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrInvalidIssue       = errors.New("invalid issue")
	ErrAIUnavailable      = errors.New("ai unavailable")
	ErrFetchFailed        = errors.New("fetch failed")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidFile        = errors.New("invalid file")
)
