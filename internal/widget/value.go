package widget

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Value is a widget reading: either a number or free text.
type Value struct {
	num     float64
	text    string
	numeric bool
}

// Number builds a numeric value.
func Number(f float64) Value {
	return Value{num: f, numeric: true}
}

// Text builds a textual value such as "Online".
func Text(s string) Value {
	return Value{text: s}
}

// Float returns the numeric reading and whether the value is numeric.
func (v Value) Float() (float64, bool) {
	return v.num, v.numeric
}

// IsNumeric reports whether the value holds a number.
func (v Value) IsNumeric() bool {
	return v.numeric
}

// IsZero reports whether the value was never set.
func (v Value) IsZero() bool {
	return !v.numeric && v.text == ""
}

// String formats whole numbers with thousands separators and other numbers
// with one decimal.
func (v Value) String() string {
	if !v.numeric {
		return v.text
	}
	if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	if v.num == math.Trunc(v.num) && math.Abs(v.num) < 1e15 {
		return humanize.Comma(int64(v.num))
	}
	return humanize.CommafWithDigits(v.num, 1)
}
