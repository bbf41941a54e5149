package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrLoad   = errors.New("dataset load failed")
	ErrNoPath = errors.New("dataset path not configured")
)
