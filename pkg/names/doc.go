// SPDX-License-Identifier: MPL-2.0

// Package names implements hierarchical names: ordered sequences of textual
// components joined by a single-character delimiter.
//
// Two concrete variants satisfy the Name contract and are interchangeable for
// any caller:
//
//   - StringArrayName stores its components as an explicit slice.
//   - StringName packs its components into one delimited string and keeps a
//     cached component count that must always equal a fresh recount.
//
// Names are immutable values. SetComponent, Insert, Append, Remove, and
// Concat return a new Name and never modify the receiver, so a Name may be
// shared freely between goroutines. Builder is the explicitly mutable
// counterpart for assembling components step by step.
//
// # Forms
//
// A name has two textual projections:
//
//   - AsString joins the components with the instance delimiter and applies
//     no masking. It is a display form only.
//   - AsDataString is the machine-readable form. Every escape character is
//     doubled, every occurrence of the default delimiter '.' is masked with
//     one escape character, and components are joined with '.', whatever
//     delimiter the instance uses. ParseDataString reverses it.
//
// # Contract checks
//
// Every public method re-validates the class invariant before and after it
// runs, checks its arguments, and checks its own result. Violations are
// reported as *PreconditionError (bad input), *PostconditionError (internal
// defect), or *InvariantError (corrupt state). Each wraps a sentinel so that
// callers can branch with errors.Is.
package names
