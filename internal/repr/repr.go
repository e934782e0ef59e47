// Package repr renders values as short literals: strings are single quoted,
// booleans are True/False and floats always show a fractional part, so that
// renderings of individuals, categories and intervals read the same whatever
// the underlying Go type.
package repr

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Literal is implemented by values whose literal rendering differs from
// their String method.
type Literal interface {
	Repr() string
}

// Of returns the literal rendering of v. Literal takes precedence over
// fmt.Stringer.
func Of(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return Quote(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return Float(x)
	case float32:
		return Float(float64(x))
	case Literal:
		return x.Repr()
	case fmt.Stringer:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return Quote(rv.String())
	case reflect.Bool:
		return Of(rv.Bool())
	}
	return fmt.Sprint(v)
}

// Quote wraps s in single quotes, escaping backslashes and single quotes.
func Quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	return "'" + r.Replace(s) + "'"
}

// Float renders f with the shortest representation that round-trips,
// switching to exponent notation outside [1e-4, 1e16).
func Float(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	a := math.Abs(f)
	if a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// Join renders each value with Of and joins them with ", ".
func Join[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Of(v)
	}
	return strings.Join(parts, ", ")
}
