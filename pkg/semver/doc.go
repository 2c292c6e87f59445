// Package semver provides a semantic version value type with parsing,
// ordering, and range-pattern evaluation.
//
// # Overview
//
// This package implements the three-number core of semantic versioning
// (semver.org): a Version is an immutable (major, minor, patch) triple of
// unsigned integers, ordered lexicographically in that priority order.
// Pre-release identifiers and build metadata are not supported.
//
// Versions parse from dotted decimal strings. Missing trailing segments
// default to zero:
//
//   - "10"     -> 10.0.0
//   - "6.9"    -> 6.9.0
//   - "1.8.9"  -> 1.8.9
//
// More than three segments is a hard parse error.
//
// # Usage
//
// Parse a version string:
//
//	v, err := semver.Parse("1.5.7")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.5.7
//
// Compare versions:
//
//	current := semver.New(1, 5, 7)
//	required := semver.New(1, 2, 9)
//	if current.EqualsOrNewer(required) {
//	    fmt.Println("Version requirement met")
//	}
//
// Evaluate a range pattern:
//
//	ok, err := current.Check(">=1.2.0")
//
// # Range Patterns
//
// A range pattern is an operator token immediately followed by a version
// string, e.g. ">=1.2.0" or "^1.2.9". Recognized operators:
//
//   - "="  exact match
//   - "<"  older than
//   - ">"  newer than
//   - "<=" older than or equal
//   - ">=" newer than or equal
//   - "^"  compatible (no breaking change since the pattern version)
//   - "~"  featureless (no new feature since the pattern version)
//
// The "^" operator follows the zero-major convention: below 1.0.0 any minor
// bump may break callers, so compatibility degrades to the "~" rule.
//
// Patterns can also be parsed once and evaluated many times:
//
//	p, err := semver.ParsePattern("^1.2.9")
//	if err != nil {
//	    // Handle error
//	}
//	p.Matches(semver.New(1, 5, 7)) // true
//
// # Error Handling
//
// All failures are returned as values and carry a sentinel for errors.Is:
//
//   - ErrInvalidSegment: a dotted segment is not a non-negative decimal
//     integer (includes the empty string and out-of-range numbers)
//   - ErrTooManyParts: more than three dot-separated segments
//   - ErrNoVersion: a pattern contains no decimal digit to split on
//   - ErrUnknownOperator: the pattern's leading token is not a recognized
//     operator
//
// For constant initialization, use MustParse which panics on error:
//
//	var MinVersion = semver.MustParse("1.0.0")
package semver
