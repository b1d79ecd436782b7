package entity

import (
	"fmt"

	"github.com/pkg/errors"
)

// Value wraps a field value and provides type conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Int returns the value as an int.
func (v Value) Int() (int, error) {
	switch i := v.Raw.(type) {
	case int:
		return i, nil
	case int32:
		return int(i), nil
	case int64:
		return int(i), nil
	}
	return 0, errors.Errorf("value is not an integer: %T", v.Raw)
}

// Float returns the value as a float64.
func (v Value) Float() (float64, error) {
	f, ok := v.Raw.(float64)
	if !ok {
		return 0, errors.Errorf("value is not a float64: %T", v.Raw)
	}
	return f, nil
}

// Field describes one field of a row source.
type Field struct {
	Name string
	Type string
}

// Line is a single row as an ordered list of values.
// The order corresponds to the fields of the row source.
type Line struct {
	Id     string
	Values []Value
}

// Get returns the value at idx, or an empty value when out of range.
func (ln Line) Get(idx int) Value {
	if idx < 0 || idx >= len(ln.Values) {
		return Value{}
	}
	return ln.Values[idx]
}
