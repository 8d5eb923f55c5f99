package schema

import "strconv"

// Kind discriminates the states a cell can be in after normalization.
type Kind uint8

const (
	// KindNull marks an absent cell or a recognized no-data sentinel.
	KindNull Kind = iota
	// KindNumber is a successfully parsed numeric cell in canonical units.
	KindNumber
	// KindText is either a free-text field or a numeric cell that could not
	// be parsed; the original text is preserved so the outcome stays
	// observable instead of being coerced away.
	KindText
)

// Value is the tagged cell representation used throughout the pipeline.
// The zero value is null.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Null is the absent-cell value.
var Null = Value{}

// Num returns a numeric value.
func Num(f float64) Value { return Value{kind: KindNumber, num: f} }

// Text returns a textual value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Kind returns the value's discriminant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the cell holds no data.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Float returns the numeric payload and whether the value is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// FloatOr returns the numeric payload, or def for null and text values.
func (v Value) FloatOr(def float64) float64 {
	if v.kind == KindNumber {
		return v.num
	}
	return def
}

// String renders the value the way it appears in output tables: numbers in
// shortest form, nulls as the empty string, text verbatim.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	default:
		return ""
	}
}
