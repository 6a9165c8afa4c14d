package domain

import "errors"

var (
	// ErrStorageUnavailable means the store could not be reached or timed out
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrStorageWriteFailed means a write reached the store and was rejected
	ErrStorageWriteFailed = errors.New("storage write failed")
	// ErrInvalidWord means a word or its translation is empty
	ErrInvalidWord = errors.New("word and translation cannot be empty")
)
