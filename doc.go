// Package main provides the apkextract command-line interface.
//
// apkextract unpacks a ZIP-format archive, usually an Android APK, and sorts
// the extracted files into images, audio and other by file extension. The
// sorted copies and a manifest.json listing the original paths per bucket are
// written to <output>/assets_organized.
//
// The main binary supports multiple subcommands:
//   - extract: Extract an archive and organize its files
//   - organize: Organize an already extracted tree
//   - list: Show archive entries and the bucket each would land in
//   - tree: Render the manifest of an organized tree
package main
