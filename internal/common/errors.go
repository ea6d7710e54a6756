// Package common defines sentinel errors shared by the dataset, bench and
// server layers of apibench. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Dataset errors.
	ErrIndexOutOfRange = errors.New("record index out of range")

	// Transport errors.
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")

	// Host introspection errors.
	ErrMemoryUnavailable = errors.New("process memory unavailable")
)
