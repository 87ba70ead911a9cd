package config

import "errors"

var (
	ErrInvalidBackend   = errors.New("invalid storage backend")
	ErrMissingRedisAddr = errors.New("redis backend requires storage.redis.addr")
	ErrMissingAzureConn = errors.New("aztables backend requires storage.azure.connection_string")
)
