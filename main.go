// SPDX-License-Identifier: MPL-2.0

// namekit inspects, edits, and renders escape-aware hierarchical names.
package main

import cmd "github.com/namekit/namekit/cmd/namekit"

func main() {
	cmd.Execute()
}
