// SPDX-License-Identifier: MPL-2.0

// Package config loads namekit settings using Viper with CUE as the file
// format.
//
// The configuration file is config.cue in the platform config directory
// ($XDG_CONFIG_HOME/namekit on Linux, ~/Library/Application Support/namekit
// on macOS, %APPDATA%\namekit on Windows), falling back to ./config.cue.
// Files are validated against the embedded #Config schema and every key can
// be overridden through NAMEKIT_* environment variables.
package config
