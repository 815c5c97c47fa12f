package timeline

import "errors"

var (
	// ErrNoPlatform indicates no entry exists on or before the queried
	// date.
	ErrNoPlatform = errors.New("no platform assigned on or before date")
)
