package extract

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/tidwall/sjson"
)

// Property-based tests for the extractor fallback law:
// missing path always yields the fallback, present path always yields the
// stored value regardless of fallback.

func TestString_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// Property 1: missing path returns the fallback verbatim
	properties.Property("missing path returns fallback", prop.ForAll(
		func(fallback string) bool {
			return String([]byte(`{}`), "data.token", fallback) == fallback
		},
		gen.AlphaString(),
	))

	// Property 2: present path returns the stored value, fallback ignored
	properties.Property("present path ignores fallback", prop.ForAll(
		func(value, fallback string) bool {
			if value == "" {
				return true // empty string is treated as absent
			}
			body, err := sjson.SetBytes([]byte(`{}`), "data.token", value)
			if err != nil {
				return false
			}
			return String(body, "data.token", fallback) == value
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	// Property 3: extraction never panics on arbitrary input
	properties.Property("arbitrary bytes never panic", prop.ForAll(
		func(raw string, path string) (ok bool) {
			defer func() {
				if r := recover(); r != nil {
					ok = false
				}
			}()
			_ = String([]byte(raw), path, "fallback")
			return true
		},
		gen.AnyString(),
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

func TestStrings_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// Property 1: missing path returns the fallback list verbatim
	properties.Property("missing path returns fallback list", prop.ForAll(
		func(fallback []string) bool {
			got := Strings([]byte(`{}`), "data.errors", fallback)
			if len(got) != len(fallback) {
				return false
			}
			for i := range got {
				if got[i] != fallback[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	// Property 2: a stored non-empty list round-trips regardless of fallback
	properties.Property("present list ignores fallback", prop.ForAll(
		func(values []string) bool {
			if len(values) == 0 {
				return true
			}
			body := []byte(`{}`)
			for i, v := range values {
				var err error
				body, err = sjson.SetBytes(body, fmt.Sprintf("data.errors.%d", i), v)
				if err != nil {
					return false
				}
			}
			got := Strings(body, "data.errors", []string{"fallback"})
			if len(got) != len(values) {
				return false
			}
			for i := range got {
				if got[i] != values[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(3, gen.AlphaString().SuchThat(func(s string) bool { return s != "" })),
	))

	properties.TestingRun(t)
}
