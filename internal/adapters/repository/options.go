// Package repository defines the recruit record store interface and errors.
package repository

import "github.com/okian/gridpath/pkg/logger"

// Option applies a configuration option to the CSVStore.
type Option func(*CSVStore)

// WithPath sets the dataset file path.
func WithPath(path string) Option {
	return func(s *CSVStore) {
		if path != "" {
			s.path = path
		}
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(log logger.Logger) Option {
	return func(s *CSVStore) {
		if log != nil {
			s.log = log
		}
	}
}
