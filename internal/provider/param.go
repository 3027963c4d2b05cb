package provider

import "net/url"

// ParamSource supplies query-parameter values to the pipeline. Only resetPass
// consults it, to obtain the reset-password token carried in the link the
// user followed.
type ParamSource interface {
	// Lookup returns the value for name and whether it was present.
	Lookup(name string) (string, bool)
}

// ValuesSource adapts url.Values (e.g. the parsed query of the current page
// URL) into a ParamSource.
type ValuesSource struct {
	values url.Values
}

// NewValuesSource wraps url.Values as a ParamSource.
func NewValuesSource(values url.Values) *ValuesSource {
	return &ValuesSource{values: values}
}

// Lookup implements ParamSource.
func (v *ValuesSource) Lookup(name string) (string, bool) {
	if v == nil || !v.values.Has(name) {
		return "", false
	}
	return v.values.Get(name), true
}

// StaticSource is a fixed-map ParamSource, used by the CLI and in tests.
type StaticSource map[string]string

// Lookup implements ParamSource.
func (s StaticSource) Lookup(name string) (string, bool) {
	value, ok := s[name]
	return value, ok
}

// NoParams is a ParamSource with no values.
var NoParams = StaticSource(nil)
