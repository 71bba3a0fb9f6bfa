// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the namekit CLI commands.
//
// Every name command parses its arguments with the configured variant and
// delimiter (config file, NAMEKIT_* environment, then --variant and
// --delimiter flags), runs the immutable name operations, and prints the
// result. Contract violations are rendered with their catalog guidance and
// mapped to distinct exit codes through ExitError.
package cmd
