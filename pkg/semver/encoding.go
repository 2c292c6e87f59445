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
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
// A Version serializes as its canonical "major.minor.patch" string.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
// It emits the version as a JSON string, e.g. "1.2.3".
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("version must be a JSON string: %w", err)
	}
	return v.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("version must be a YAML string: %w", err)
	}
	return v.UnmarshalText([]byte(s))
}
