package jsvalue

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToNumber implements ECMA-262 §9.3's ToNumber abstract operation for the
// seven-variant value domain this evaluator supports, grounded on
// LiteralValue's `Into<JsNumber>` in the original evaluator
// (lib-ir/src/ast/literal_value.rs).
func (v Value) ToNumber() Number {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindBoolean:
		if v.Bool {
			return NumberOf(1)
		}
		return NumberOf(0)
	case KindNull:
		return NumberOf(0)
	case KindString:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return NumberOf(0)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return NaNNumber
		}
		return NumberOf(f)
	case KindUndefined, KindObject, KindClosure:
		return NaNNumber
	default:
		return NaNNumber
	}
}

// ToBoolean implements ECMA-262 §9.2's ToBoolean, grounded on the same
// source's `Into<bool>`. Objects and closures are always truthy, matching
// JS (only the primitive falsy values exist: "", 0, NaN, null, undefined,
// false).
func (v Value) ToBoolean() bool {
	switch v.Kind {
	case KindBoolean:
		return v.Bool
	case KindNumber:
		return !v.Num.NaN && v.Num.Value != 0
	case KindString:
		return v.Str != ""
	case KindNull, KindUndefined:
		return false
	case KindObject, KindClosure:
		return true
	default:
		return false
	}
}

// ToString implements ECMA-262's ToString abstract operation, grounded on
// literal_value.rs's `Into<String>` plus the object/closure stringification
// rules supplemented from evaluator_value.rs and js_value_mapper.rs: a
// closure renders as the fixed literal "[Function]" rather than a
// recursive dump of its body, and an object renders as "{k:v,...}" with
// unquoted values and no trailing comma.
func (v Value) ToString() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindBoolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindNumber:
		if v.Num.NaN {
			return "NaN"
		}
		return formatNumber(v.Num.Value)
	case KindClosure:
		return "[Function]"
	case KindObject:
		return v.objectString()
	default:
		return ""
	}
}

func (v Value) objectString() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range v.Object.Keys() {
		if i > 0 {
			b.WriteByte(',')
		}
		val, _ := v.Object.Get(k)
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(val.ToString())
	}
	b.WriteByte('}')
	return b.String()
}

func formatNumber(f float64) string {
	switch abs := math.Abs(f); {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case abs >= 1e-6 && abs < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	return strings.Replace(strings.Replace(s, "e-0", "e-", 1), "e+0", "e+", 1)
}

// TypeName renders the Kind for InvalidType diagnostics.
func (v Value) TypeName() string {
	return v.Kind.String()
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%s)", v.Kind, v.ToString())
}
