// Package version reports build metadata for apkextract.
//
// Values come from -ldflags at build time:
//
//	-ldflags "-X github.com/dendrascience/apkextract/version.Version=v1.0.0 -X github.com/dendrascience/apkextract/version.Commit=abc123"
//
// and otherwise from debug.ReadBuildInfo, falling back to development
// defaults.
package version
