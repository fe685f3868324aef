// Package ops exposes the number, strutil and datetime packages through one
// flat catalog of named operations ("number.format", "string.kebabCase",
// "time.timeAgo", ...).
//
// Operations take loosely typed arguments (Args) as decoded from JSON, YAML or
// CUE and return plain values: strings, booleans, numbers, string lists or
// datetime.Breakdown. The CLI and the conformance harness both dispatch
// through Catalog.Invoke, so an operation behaves the same in both.
//
// Error policy mirrors the library:
//   - domain errors (factorial of a negative number, an invalid base) are
//     returned as errors;
//   - unparseable dates and malformed base digits stay in-band as the
//     "Invalid date" and "NaN" sentinel values;
//   - bad arguments are reported as *ArgError, unknown names as
//     ErrUnknownOperation.
package ops
