// Package persistence keeps the task collection in a single durable slot.
//
// A Slot is one named entry in some key-value medium (a file, a sqlite
// table, a redis key, or plain memory). The Adapter reads and writes the
// whole collection as one JSON snapshot; there is no incremental write and
// no schema version.
package persistence

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by Slot.Get when nothing has been stored under the key
var ErrSlotEmpty = errors.New("slot is empty")

// Slot is a minimal durable key-value interface
type Slot interface {
	// Get returns the stored value, or ErrSlotEmpty when the key is absent
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the value stored under key
	Set(ctx context.Context, key string, value []byte) error
}

// Durable is implemented by slots that can report whether they actually
// persist anything. Slots that don't implement it are assumed durable.
type Durable interface {
	Durable() bool
}

// Closer is implemented by slots holding a connection or file handle
type Closer interface {
	Close() error
}
