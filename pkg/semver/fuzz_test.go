package semver

import (
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1")
	f.Add("10")
	f.Add("6.9")
	f.Add("1.8.9")
	f.Add("0")
	f.Add("0.0")
	f.Add("0.0.0")
	f.Add("999.999.999")
	f.Add("4294967295.4294967295.4294967295")
	f.Add("4294967296")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("v1.2.3")
	f.Add("-1")
	f.Add("1.-2")
	f.Add("+1.2")
	f.Add("a.b.c")
	f.Add("hi.there")
	f.Add("1.2.3.4")
	f.Add("1.2.3.4.5")
	f.Add("   1.2.3")
	f.Add("1.2.3   ")
	f.Add("1. 2.3")
	f.Add("0x10.2.3")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic
		v, err := Parse(input)

		// If parsing succeeded, verify invariants
		if err == nil {
			// String() should not panic and should re-parse to the same value
			s := v.String()
			v2, err2 := Parse(s)
			if err2 != nil {
				t.Errorf("Re-parsing %q (from %q) failed: %v", s, input, err2)
			} else if v != v2 {
				t.Errorf("Round-trip mismatch for %q: %+v != %+v", input, v, v2)
			}

			// Comparison methods should not panic and must agree with Compare
			other := New(1, 2, 3)
			cmp := v.Compare(other)
			if v.IsOlder(other) != (cmp < 0) ||
				v.Equals(other) != (cmp == 0) ||
				v.IsNewer(other) != (cmp > 0) {
				t.Errorf("relational predicates disagree with Compare for %q", input)
			}
			_ = v.IsCompatible(other)
			_ = v.IsFeatureless(other)
		}
	})
}

// FuzzCheck performs fuzz testing on pattern evaluation
func FuzzCheck(f *testing.F) {
	f.Add("=6.9.9")
	f.Add("<8.5.8")
	f.Add(">5.1.9")
	f.Add("<=1.2.5")
	f.Add(">=5.1.9")
	f.Add("^8.9.1")
	f.Add("~30.11.20")
	f.Add("seeya5.8.10")
	f.Add("")
	f.Add("=")
	f.Add(">=")
	f.Add("5.8.10")
	f.Add(">=1.2.3.4")
	f.Add("^v1.2.3")

	v := New(1, 0, 69)

	f.Fuzz(func(t *testing.T, pattern string) {
		// Check should never panic
		ok, err := v.Check(pattern)
		if err != nil && ok {
			t.Errorf("Check(%q) returned true together with error %v", pattern, err)
		}

		// A successfully parsed pattern must re-parse from its String form
		if p, perr := ParsePattern(pattern); perr == nil {
			p2, err2 := ParsePattern(p.String())
			if err2 != nil {
				t.Errorf("Re-parsing pattern %q (from %q) failed: %v", p.String(), pattern, err2)
			} else if p2.Op != p.Op || p2.Version != p.Version {
				t.Errorf("Pattern round-trip mismatch for %q: %+v != %+v", pattern, p, p2)
			}
		}
	})
}
