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

import "slices"

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
// The order is lexicographic over (Major, Minor, Patch) and is a strict
// total order. All relational predicates derive from it.
// Useful for sorting versions.
func (v Version) Compare(other Version) int {
	// Compare Major
	if v.Major < other.Major {
		return -1
	}
	if v.Major > other.Major {
		return 1
	}

	// Compare Minor
	if v.Minor < other.Minor {
		return -1
	}
	if v.Minor > other.Minor {
		return 1
	}

	// Compare Patch
	if v.Patch < other.Patch {
		return -1
	}
	if v.Patch > other.Patch {
		return 1
	}

	return 0
}

// Equals returns true if v exactly equals other (all components match).
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}

// IsNewer returns true if v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// IsOlder returns true if v is strictly older than other.
func (v Version) IsOlder(other Version) bool {
	return v.Compare(other) < 0
}

// EqualsOrNewer returns true if v is equal to or newer than other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// EqualsOrOlder returns true if v is equal to or older than other.
func (v Version) EqualsOrOlder(other Version) bool {
	return v.Compare(other) <= 0
}

// Sort sorts versions in place, oldest first.
func Sort(versions []Version) {
	slices.SortFunc(versions, Version.Compare)
}

// Latest returns the newest version in the slice.
// The second return value is false if the slice is empty.
func Latest(versions []Version) (Version, bool) {
	if len(versions) == 0 {
		return Version{}, false
	}

	latest := versions[0]
	for _, v := range versions[1:] {
		if v.IsNewer(latest) {
			latest = v
		}
	}
	return latest, true
}
