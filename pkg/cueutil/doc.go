// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE documents against embedded schemas.
//
// Both the namekit configuration file and tree description files go through
// the same three steps: compile the schema, unify the user document with a
// root definition, then validate and decode into a Go struct.
//
//	//go:embed tree_schema.cue
//	var treeSchema []byte
//
//	result, err := cueutil.ParseAndDecode[Spec](treeSchema, data, "#Tree",
//	    cueutil.WithFilename(path))
//
// Errors carry the file name and a JSON-style path to the offending field.
package cueutil
