// Package timezone is the boundary to the IANA timezone rule database.
//
// Usage Examples:
//
//  1. Resolving a zone and its current offset:
//     loc, err := timezone.Load("Europe/London")
//     offset := timezone.OffsetOf("Europe/London", time.Now()) // "+00:00" or "+01:00"
//
//  2. Parsing an ISO 8601 reading into a zone:
//     t, err := timezone.ParseIn("2024-01-15T12:00:00", loc)   // naive: wall clock kept
//     t, err := timezone.ParseIn("2024-01-15T12:00:00Z", loc)  // zoned: converted into loc
//
//  3. Formatting:
//     timezone.FormatOffset(t)                     // "-05:00"
//     t.Format(constant.TimeLayout)                // "12:00:00"
//     t.Format(constant.DateLayout)                // "Mon, Jan 15, 2024"
//
// The rule database is embedded through time/tzdata, so lookups do not depend on
// the zoneinfo files of the host. Unknown identifiers never panic: Load returns an
// error and OffsetOf returns the "+00:00" sentinel.
package timezone
