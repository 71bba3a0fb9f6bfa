// SPDX-License-Identifier: MPL-2.0

// Package filetree models an in-memory file system tree whose full names are
// names.Name values.
//
// Every tree hangs off a RootDirectory. The root has an empty base name and
// its full name is the empty "/"-delimited StringName; every other node adds
// one component per level. Trees can be built in code or described in a CUE
// or TOML file and read with Load.
package filetree
