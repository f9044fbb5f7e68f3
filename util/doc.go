// Package util provides the low-level building blocks shared by the
// extractor and the organizer.
//
// Key Components:
//
// Errors:
//   - Sentinel errors for missing archives, unsafe entry paths and locked
//     destinations, checked with errors.Is()
//
// Archives:
//   - Entry counting, listing and lookup on ZIP archives without extracting
//
// Files:
//   - CopyFile, which copies content together with permission bits and
//     modification time
package util
