// SPDX-License-Identifier: MPL-2.0

// Package issue turns failures into user-facing guidance.
//
// ActionableError adds the attempted operation, the resource involved, and
// suggestions to an error. The Issue catalog holds longer Markdown
// explanations, one per failure category, rendered with glamour.
package issue
