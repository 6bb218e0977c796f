package model

import (
	"strconv"
	"time"
)

// ValueKind identifies the type of a cell value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindNumber
	KindText
	KindBool
	KindDate
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindText:
		return "Text"
	case KindBool:
		return "Bool"
	case KindDate:
		return "Date"
	default:
		return "Null"
	}
}

// Value is a single typed cell in a dataset row.
// The zero value is the null cell.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
	t    time.Time
}

// Null returns the null cell value.
func Null() Value { return Value{} }

// Number creates a numeric cell value.
func Number(v float64) Value { return Value{kind: KindNumber, num: v} }

// Text creates a text cell value.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Bool creates a boolean cell value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Date creates a date cell value.
func Date(t time.Time) Value { return Value{kind: KindDate, t: t} }

// Kind returns the value's type.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether the value is the null cell.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Float returns the numeric value and true if the cell is a number.
func (v Value) Float() (float64, bool) {
	if v.kind == KindNumber {
		return v.num, true
	}
	return 0, false
}

// Time returns the date value and true if the cell is a date.
func (v Value) Time() (time.Time, bool) {
	if v.kind == KindDate {
		return v.t, true
	}
	return time.Time{}, false
}

// String returns the display form of the value. Null cells render as the
// empty string.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return v.t.Format("2006-01-02")
	default:
		return ""
	}
}
