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

// IsCompatible reports whether no breaking change has occurred going from
// other up to v. For major >= 1, v is compatible with other when it is not
// older than other and stays within other's major line:
//
//	other <= v < (other.Major+1).0.0
//
// For major == 0 (zero-major convention) any minor bump may be breaking, so
// compatibility is defined as feature-equivalence and delegates to
// IsFeatureless.
//
// The predicate is asymmetric: a v older than other is never compatible.
func (v Version) IsCompatible(other Version) bool {
	if v.Major == 0 {
		return v.IsFeatureless(other)
	}

	return v.EqualsOrNewer(other) && v.IsOlder(New(other.Major+1, 0, 0))
}

// IsFeatureless reports whether no new feature has been added going from
// other up to v: v is not older than other and stays within other's minor
// line:
//
//	other <= v < other.Major.(other.Minor+1).0
//
// Like IsCompatible, the predicate is asymmetric.
func (v Version) IsFeatureless(other Version) bool {
	return v.EqualsOrNewer(other) && v.IsOlder(New(other.Major, other.Minor+1, 0))
}
