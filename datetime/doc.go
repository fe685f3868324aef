// Package datetime parses loosely typed date inputs, formats them with a small
// token template, renders relative times ("3 hours ago", "in 2 days") and does
// calendar arithmetic.
//
// Parse is the single normalization point: every other function that accepts
// an `any` input routes it through Parse. Unparseable input never panics; it
// surfaces as the InvalidDate sentinel (string results) or a false ok value.
//
// Strings and epoch-millisecond numbers are read on the host's local calendar.
// An explicit offset in a string only fixes the instant: "2024-03-05T23:00:00-05:00"
// formats as "2024-03-06 04:00" on a UTC host. time.Time values keep their own
// location.
//
// The only ambient dependency is the Clock used for "now" by TimeAgo.
package datetime
