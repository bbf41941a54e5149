package geo

import "errors"

// Sentinel kinds for resolver errors.
var (
	ErrLookupLoad = errors.New("college locations load failed")
)
