// Package util provides utility functions for apkextract.
package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Archive errors
	ErrArchiveNotFound  = errors.New("archive file not found")
	ErrIllegalEntryPath = errors.New("archive entry escapes destination")

	// Destination errors
	ErrDestinationLocked = errors.New("destination is locked by another run")

	// Configuration errors
	ErrMissingArchivePath = errors.New("archive path is required")
	ErrMissingOutputDir   = errors.New("output directory is required")
)
