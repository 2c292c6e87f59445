// Copyright (c) 2025, the Samurai authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for pattern parsing failures
var (
	ErrNoVersion       = errors.New("pattern contains no version")
	ErrUnknownOperator = errors.New("unknown pattern operator")
)

// Operator represents a range-pattern comparison operator.
type Operator string

// Operator constants for the supported pattern operators.
const (
	OpEqual          Operator = "="
	OpLess           Operator = "<"
	OpGreater        Operator = ">"
	OpLessOrEqual    Operator = "<="
	OpGreaterOrEqual Operator = ">="
	OpCompatible     Operator = "^"
	OpFeatureless    Operator = "~"
)

// ParseOperator parses a string into an Operator. Matching is exact over the
// whole token: ">=" is its own operator, never ">" followed by "=". There is
// no trimming or case folding.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case OpEqual, OpLess, OpGreater, OpLessOrEqual, OpGreaterOrEqual,
		OpCompatible, OpFeatureless:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
}

// Pattern is a parsed range pattern: an operator applied to a version.
// Parse once with ParsePattern, then evaluate with Matches as many times
// as needed.
type Pattern struct {
	Op      Operator
	Version Version
}

// ParsePattern parses a range pattern such as ">=1.2.0" or "^1.2.9".
// The pattern splits at the first decimal digit: everything before it is the
// operator token, everything from it on is the version. Returns ErrNoVersion
// when the pattern contains no digit, ErrUnknownOperator for an unrecognized
// token (including the empty one), and propagates version parse errors.
func ParsePattern(s string) (Pattern, error) {
	start := strings.IndexFunc(s, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	if start == -1 {
		return Pattern{}, ErrNoVersion
	}

	op, err := ParseOperator(s[:start])
	if err != nil {
		return Pattern{}, err
	}

	v, err := Parse(s[start:])
	if err != nil {
		return Pattern{}, err
	}

	return Pattern{Op: op, Version: v}, nil
}

// Matches reports whether v satisfies the pattern.
func (p Pattern) Matches(v Version) bool {
	switch p.Op {
	case OpEqual:
		return v.Equals(p.Version)
	case OpLess:
		return v.IsOlder(p.Version)
	case OpGreater:
		return v.IsNewer(p.Version)
	case OpLessOrEqual:
		return v.EqualsOrOlder(p.Version)
	case OpGreaterOrEqual:
		return v.EqualsOrNewer(p.Version)
	case OpCompatible:
		return v.IsCompatible(p.Version)
	case OpFeatureless:
		return v.IsFeatureless(p.Version)
	default:
		return false
	}
}

// String returns the pattern in its source form, e.g. ">=1.2.0".
func (p Pattern) String() string {
	return string(p.Op) + p.Version.String()
}

// Check evaluates v against a range pattern string.
// It is shorthand for ParsePattern followed by Matches:
//
//	ok, err := v.Check("^1.2.9")
//
// Errors are returned for malformed patterns, never for a version that
// simply does not satisfy the pattern.
func (v Version) Check(pattern string) (bool, error) {
	p, err := ParsePattern(pattern)
	if err != nil {
		return false, err
	}
	return p.Matches(v), nil
}
