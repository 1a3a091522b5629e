package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatValue renders a field value for messages and statistics keys.
// Absent or null values render as "None" and booleans as "True"/"False",
// matching the catalog's historical report output. Integer literals print
// as written; fractional or exponent literals print in shortest float form
// with a trailing ".0" when integral (1e2 prints as 100.0, 1.50 as 1.5).
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case string:
		return val
	case bool:
		if val {
			return "True"
		}
		return "False"
	case json.Number:
		if isIntegerLiteral(val) {
			if n, ok := new(big.Int).SetString(val.String(), 10); ok {
				return n.String()
			}
			return val.String()
		}
		return formatFloat(parseFloat(val))
	case float64:
		return formatFloat(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}

// ValueKey returns a comparison key for v. Two values share a key when they
// are equal: numbers compare by exact value, so 1 and 1.0 collide while
// 9007199254740992 and 9007199254740993 do not. Booleans count as 1 and 0.
// Strings never equal numbers. Absent and null share one key.
func ValueKey(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null:"
	case string:
		return "str:" + val
	case bool:
		if val {
			return "num:1"
		}
		return "num:0"
	case json.Number:
		if isIntegerLiteral(val) {
			if n, ok := new(big.Int).SetString(val.String(), 10); ok {
				return "num:" + n.String()
			}
			return "num:" + val.String()
		}
		return floatKey(parseFloat(val))
	case float64:
		return floatKey(val)
	case int:
		return "num:" + strconv.Itoa(val)
	case int64:
		return "num:" + strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("other:%v", val)
	}
}

// isIntegerLiteral reports whether n was written without a fraction or exponent.
func isIntegerLiteral(n json.Number) bool {
	return !strings.ContainsAny(n.String(), ".eE")
}

// parseFloat decodes a float literal; out-of-range literals become ±Inf.
func parseFloat(n json.Number) float64 {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil && !math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

func floatKey(f float64) string {
	switch {
	case math.IsNaN(f):
		return "num:nan"
	case math.IsInf(f, 1):
		return "num:inf"
	case math.IsInf(f, -1):
		return "num:-inf"
	}
	return "num:" + new(big.Rat).SetFloat64(f).RatString()
}

// formatFloat prints f in shortest round-trip form: positional for decimal
// exponents in [-4, 16), scientific otherwise.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
