// Package strutil converts identifiers between naming conventions, generates
// random (version 4) UUIDs and extracts email addresses from free text.
//
// Case converters share one tokenizer: words are split on runs of whitespace,
// underscores and hyphens, and between a lower-case letter or digit and a
// following upper-case letter. KebabCase, SnakeCase and CamelCase are
// idempotent.
//
// All functions are safe for concurrent use.
package strutil
