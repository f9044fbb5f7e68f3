// Package extract unpacks a ZIP archive, usually an APK, into a destination
// directory and hands the extracted tree to the organize package.
//
// Run is the whole pipeline: existence check, destination creation, an
// advisory lock on the destination, extraction and organization. Extract
// only unpacks.
package extract
