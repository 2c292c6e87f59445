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
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrInvalidSegment = errors.New("version segment is not a non-negative integer")
	ErrTooManyParts   = errors.New("version has more than 3 parts")
)

// Version represents a semantic version number with Major, Minor, and Patch
// components. It is a pure value: immutable after construction, freely
// copyable, and safe to share between goroutines without synchronization.
type Version struct {
	// Major represents incompatible API changes.
	Major uint32

	// Minor represents functionality additions in a backwards compatible manner.
	Minor uint32

	// Patch represents bug fixes in a backwards compatible manner.
	Patch uint32
}

// New creates a new Version with the specified major, minor, and patch values.
// Use Parse for parsing version strings.
func New(major, minor, patch uint32) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// String returns the canonical "major.minor.patch" representation.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse parses a version string into a Version.
// Supported formats: "1", "1.2", "1.2.3". Missing trailing segments default
// to zero. Each segment must be a base-10 non-negative integer that fits in
// 32 bits; there is no whitespace trimming, sign handling, or "v" prefix.
// Returns ErrTooManyParts for more than three segments and ErrInvalidSegment
// (wrapping the offending segment) for anything that is not a valid number,
// including the empty string.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyParts
	}

	// Missing segments stay zero.
	var nums [3]uint32
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidSegment, part)
		}
		nums[i] = uint32(n)
	}

	return New(nums[0], nums[1], nums[2]), nil
}

// MustParse parses a version string and panics if parsing fails.
// This function is useful for initializing package-level constants or test
// data where the version string is known to be valid at compile time.
//
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use Parse and handle errors explicitly.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}
