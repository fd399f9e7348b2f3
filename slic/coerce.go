package slic

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Scalar lists the field types a token can be coerced into. Named types
// are accepted through their underlying type; time.Duration is parsed
// with time.ParseDuration instead of as an integer.
type Scalar interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Accepted boolean spellings. Comparison is case-sensitive.
var (
	trueValues  = []string{"true", "1", "yes", "on", "y"}
	falseValues = []string{"false", "0", "no", "off", "n"}
)

// Coerce converts token into a T. It has no side effects: on failure it
// returns the zero value and false.
//
// Numbers must consume the whole token in base 10; an empty token, a
// leading '+', trailing garbage or an out-of-range value all fail.
func Coerce[T Scalar](token string) (T, bool) {
	var v T

	switch p := any(&v).(type) {
	case *time.Duration:
		d, err := time.ParseDuration(token)
		if err != nil {
			return v, false
		}
		*p = d
	case *bool:
		b, ok := parseBool(token)
		if !ok {
			return v, false
		}
		*p = b
	case *string:
		*p = token
	case *int:
		n, ok := parseInt(token, strconv.IntSize)
		if !ok {
			return v, false
		}
		*p = int(n)
	case *int64:
		n, ok := parseInt(token, 64)
		if !ok {
			return v, false
		}
		*p = n
	case *uint:
		n, ok := parseUint(token, strconv.IntSize)
		if !ok {
			return v, false
		}
		*p = uint(n)
	case *float64:
		f, ok := parseFloat(token, 64)
		if !ok {
			return v, false
		}
		*p = f
	default:
		return coerceKind[T](token)
	}
	return v, true
}

// coerceKind handles the remaining widths and named types by kind.
func coerceKind[T Scalar](token string) (T, bool) {
	var v T

	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Bool:
		b, ok := parseBool(token)
		if !ok {
			return v, false
		}
		rv.SetBool(b)
	case reflect.String:
		rv.SetString(token)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := parseInt(token, rv.Type().Bits())
		if !ok {
			return v, false
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := parseUint(token, rv.Type().Bits())
		if !ok {
			return v, false
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, ok := parseFloat(token, rv.Type().Bits())
		if !ok {
			return v, false
		}
		rv.SetFloat(f)
	default:
		return v, false
	}
	return v, true
}

func parseInt(token string, bits int) (int64, bool) {
	if !numericToken(token) {
		return 0, false
	}
	n, err := strconv.ParseInt(token, 10, bits)
	return n, err == nil
}

func parseUint(token string, bits int) (uint64, bool) {
	if !numericToken(token) {
		return 0, false
	}
	n, err := strconv.ParseUint(token, 10, bits)
	return n, err == nil
}

func parseFloat(token string, bits int) (float64, bool) {
	if !numericToken(token) || strings.ContainsAny(token, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(token, bits)
	return f, err == nil
}

func parseBool(token string) (bool, bool) {
	for _, s := range trueValues {
		if token == s {
			return true, true
		}
	}
	for _, s := range falseValues {
		if token == s {
			return false, true
		}
	}
	return false, false
}

// numericToken rejects what strconv would accept but a plain decimal
// grammar does not: the empty string and an explicit '+' sign. Floats
// additionally refuse hex mantissas and digit separators.
func numericToken(token string) bool {
	return token != "" && token[0] != '+'
}

// isBoolType reports whether T's underlying type is bool.
func isBoolType[T Scalar]() bool {
	var v T
	return reflect.TypeOf(v).Kind() == reflect.Bool
}
