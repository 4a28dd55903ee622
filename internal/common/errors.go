// Package common defines shared sentinel errors and small helpers used across
// picseed components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Provisioning outcomes.
	ErrAlreadyExists = errors.New("already exists")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid config")
)
