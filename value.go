package ralph

import (
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
)

// TemplateValue is a value substituted into a bytecode template.
// This is a sealed interface - only BoolValue, IntValue and TextValue implement it.
type TemplateValue interface {
	// isTemplateValue is unexported to seal the interface.
	isTemplateValue()

	// String returns a human readable form for error messages.
	String() string
}

// BoolValue is a boolean template value.
type BoolValue bool

func (BoolValue) isTemplateValue() {}

func (v BoolValue) String() string {
	return strconv.FormatBool(bool(v))
}

// IntValue is an arbitrary-precision integer template value.
// The range is checked when the value is encoded as I256 or U256.
type IntValue struct {
	v *big.Int
}

func (IntValue) isTemplateValue() {}

func (v IntValue) String() string {
	return v.v.String()
}

// Big returns a copy of the integer.
func (v IntValue) Big() *big.Int {
	return new(big.Int).Set(v.v)
}

// TextValue is a string template value: a hex byte vector or a base58 address.
type TextValue string

func (TextValue) isTemplateValue() {}

func (v TextValue) String() string {
	return strconv.Quote(string(v))
}

// Bool creates a boolean template value.
func Bool(b bool) BoolValue {
	return BoolValue(b)
}

// Int creates an integer template value from a *big.Int. The value is copied.
func Int(v *big.Int) IntValue {
	return IntValue{v: new(big.Int).Set(v)}
}

// Int64 creates an integer template value.
func Int64(v int64) IntValue {
	return IntValue{v: big.NewInt(v)}
}

// Uint64 creates an integer template value.
func Uint64(v uint64) IntValue {
	return IntValue{v: new(big.Int).SetUint64(v)}
}

// Text creates a string template value.
func Text(s string) TextValue {
	return TextValue(s)
}

// NewTemplateValue converts a Go value to a TemplateValue.
// Supported types:
//   - TemplateValue (returned as is)
//   - bool
//   - int, int8..int64, uint, uint8..uint64
//   - *big.Int, *uint256.Int
//   - string
func NewTemplateValue(value any) (TemplateValue, error) {
	switch v := value.(type) {
	case TemplateValue:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int64(int64(v)), nil
	case int8:
		return Int64(int64(v)), nil
	case int16:
		return Int64(int64(v)), nil
	case int32:
		return Int64(int64(v)), nil
	case int64:
		return Int64(v), nil
	case uint:
		return Uint64(uint64(v)), nil
	case uint8:
		return Uint64(uint64(v)), nil
	case uint16:
		return Uint64(uint64(v)), nil
	case uint32:
		return Uint64(uint64(v)), nil
	case uint64:
		return Uint64(v), nil
	case *big.Int:
		if v == nil {
			break
		}
		return Int(v), nil
	case *uint256.Int:
		if v == nil {
			break
		}
		return IntValue{v: v.ToBig()}, nil
	case string:
		return Text(v), nil
	}
	return nil, &UnsupportedValueError{Value: value}
}

// TemplateVariables maps variable names to the values substituted for them.
type TemplateVariables map[string]TemplateValue

// VariablesFrom converts a loosely typed mapping using NewTemplateValue.
func VariablesFrom(values map[string]any) (TemplateVariables, error) {
	vars := make(TemplateVariables, len(values))
	for name, raw := range values {
		v, err := NewTemplateValue(raw)
		if err != nil {
			return nil, &UnsupportedValueError{Name: name, Value: raw}
		}
		vars[name] = v
	}
	return vars, nil
}
