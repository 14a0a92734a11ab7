package events

import "errors"

var (
	// ErrBusClosed is returned when sending or listening after Close
	ErrBusClosed = errors.New("event bus is closed")
)
