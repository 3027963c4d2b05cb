// Package extract provides dotted-path value extraction from JSON response
// bodies with fallback defaults. It is the mechanism by which a response
// without an errors/messages field degrades gracefully to the configured
// per-action defaults.
package extract

import (
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// String walks body along a gjson dotted path (e.g. "data.token") and returns
// the string value found there. If the path is absent, resolves to a non-string
// scalar, or the walk fails at any intermediate segment, the first supplied
// fallback is returned instead ("" when none is given). Never panics on
// malformed input.
func String(body []byte, path string, fallbacks ...string) string {
	result := gjson.GetBytes(body, path)
	if result.Exists() && result.Type == gjson.String && result.Str != "" {
		return result.Str
	}
	if len(fallbacks) > 0 {
		return fallbacks[0]
	}
	return ""
}

// Strings walks body along a gjson dotted path and returns the list of strings
// found there. A JSON array yields its string elements, a bare string yields a
// single-element list. If the path is absent or yields nothing, the first
// supplied fallback list is returned (nil when none is given).
func Strings(body []byte, path string, fallbacks ...[]string) []string {
	result := gjson.GetBytes(body, path)

	values := collect(result)
	if len(values) > 0 {
		return values
	}
	if len(fallbacks) > 0 {
		return fallbacks[0]
	}
	return nil
}

// collect flattens a gjson result into a list of non-empty strings.
func collect(result gjson.Result) []string {
	switch {
	case !result.Exists():
		return nil
	case result.IsArray():
		strs := lo.Map(result.Array(), func(item gjson.Result, _ int) string {
			return item.String()
		})
		return lo.Filter(strs, func(s string, _ int) bool { return s != "" })
	case result.Type == gjson.String && result.Str != "":
		return []string{result.Str}
	default:
		return nil
	}
}
