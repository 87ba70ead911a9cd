package persistence

import "errors"

// Record validation errors
var (
	ErrInvalidRecord = errors.New("invalid task record")
)

// Backend configuration errors
var (
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrNoRedisClient  = errors.New("redis slot requires a client")
	ErrValueTooLarge  = errors.New("snapshot exceeds the backend size limit")
)
