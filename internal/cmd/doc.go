// Package cmd provides the command-line interface implementation for apkextract.
//
// It uses the Cobra library for command structure and Fang for styling.
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command; NewRootCmd wires them together and
// configures apex/log for the console.
//
// The commands are thin: extraction and organization live in the extract and
// organize packages, archive inspection in util. This package only parses
// flags, loads configuration and renders tables and trees.
package cmd
