package datatable

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

type valueKind int

const (
	kindMissing valueKind = iota
	kindNaN
	kindBool
	kindNumber
	kindTime
	kindString
	kindOther
)

type classified struct {
	kind valueKind
	num  float64
	str  string
	b    bool
	t    time.Time
	raw  any
}

func classify(v any) classified {
	switch x := v.(type) {
	case nil:
		return classified{kind: kindMissing}
	case string:
		return classified{kind: kindString, str: x, raw: v}
	case bool:
		return classified{kind: kindBool, b: x, raw: v}
	case time.Time:
		return classified{kind: kindTime, t: x, raw: v}
	case *time.Time:
		if x == nil {
			return classified{kind: kindMissing}
		}
		return classified{kind: kindTime, t: *x, raw: v}
	case int:
		return number(float64(x), v)
	case int8:
		return number(float64(x), v)
	case int16:
		return number(float64(x), v)
	case int32:
		return number(float64(x), v)
	case int64:
		return number(float64(x), v)
	case uint:
		return number(float64(x), v)
	case uint8:
		return number(float64(x), v)
	case uint16:
		return number(float64(x), v)
	case uint32:
		return number(float64(x), v)
	case uint64:
		return number(float64(x), v)
	case float32:
		return number(float64(x), v)
	case float64:
		return number(x, v)
	}
	return classifyNamed(v)
}

// classifyNamed handles defined types such as `type Role string` by their
// underlying kind.
func classifyNamed(v any) classified {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return classified{kind: kindMissing}
		}
		return classified{kind: kindOther, str: fmt.Sprint(v), raw: v}
	case reflect.String:
		return classified{kind: kindString, str: rv.String(), raw: v}
	case reflect.Bool:
		return classified{kind: kindBool, b: rv.Bool(), raw: v}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number(float64(rv.Int()), v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number(float64(rv.Uint()), v)
	case reflect.Float32, reflect.Float64:
		return number(rv.Float(), v)
	default:
		return classified{kind: kindOther, str: fmt.Sprint(v), raw: v}
	}
}

func number(f float64, raw any) classified {
	if math.IsNaN(f) {
		return classified{kind: kindNaN, raw: raw}
	}
	return classified{kind: kindNumber, num: f, raw: raw}
}

// compareValues is a total order over arbitrary field values: missing
// values sort lowest, then NaN, then values grouped by kind.
func compareValues(a, b any) int {
	ca, cb := classify(a), classify(b)
	if ca.kind != cb.kind {
		return compareInts(int(ca.kind), int(cb.kind))
	}

	switch ca.kind {
	case kindMissing, kindNaN:
		return 0
	case kindBool:
		switch {
		case ca.b == cb.b:
			return 0
		case !ca.b:
			return -1
		default:
			return 1
		}
	case kindNumber:
		switch {
		case ca.num < cb.num:
			return -1
		case ca.num > cb.num:
			return 1
		default:
			return 0
		}
	case kindTime:
		return ca.t.Compare(cb.t)
	default:
		return strings.Compare(ca.str, cb.str)
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// matches reports whether v satisfies a search for query. Text matches
// case-insensitively; numbers match when their decimal form contains the
// query verbatim. lowered is query in lower case.
func matches(v any, query, lowered string) bool {
	c := classify(v)
	switch c.kind {
	case kindString:
		return strings.Contains(strings.ToLower(c.str), lowered)
	case kindNumber:
		return strings.Contains(decimalString(c), query)
	default:
		return false
	}
}

func decimalString(c classified) string {
	switch x := c.raw.(type) {
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	}
	if c.num == math.Trunc(c.num) && math.Abs(c.num) < 1e15 {
		return strconv.FormatInt(int64(c.num), 10)
	}
	return strconv.FormatFloat(c.num, 'f', -1, 64)
}
