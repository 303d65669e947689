package domain

import "errors"

var (
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrExtensionNotFound = errors.New("extension not found")
)
