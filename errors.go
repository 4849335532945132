package ralph

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for common failure conditions.
var (
	// ErrTruncated indicates a compact integer is shorter than its header requires.
	ErrTruncated = errors.New("ralph: truncated compact integer")

	// ErrInvalidHeader indicates a multi-byte compact integer declares more than 32 bytes.
	ErrInvalidHeader = errors.New("ralph: invalid compact integer header")

	// ErrInvalidMethodIndex indicates contract bytecode carries a malformed method offset index.
	ErrInvalidMethodIndex = errors.New("ralph: invalid method index")
)

// RangeError indicates an integer outside the representable I256 or U256 bound.
type RangeError struct {
	Type  string // "I256" or "U256"
	Value *big.Int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("ralph: value %s out of range for %s", e.Value, e.Type)
}

// FormatError indicates a malformed hex string or base58 address.
type FormatError struct {
	Kind  string // "hex" or "base58"
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ralph: invalid %s string %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("ralph: invalid %s string %q", e.Kind, e.Input)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// TypeMismatchError indicates a template value does not fit its declared type,
// or the declared type name is unknown.
type TypeMismatchError struct {
	Type  string
	Value TemplateValue
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("ralph: invalid template value %s for type %s", describeValue(e.Value), e.Type)
}

// MissingVariableError indicates a placeholder names a variable that was not provided.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("ralph: the value of variable %s is not provided", e.Name)
}

// UnsupportedValueError indicates a Go value that has no template value representation.
type UnsupportedValueError struct {
	Name  string // variable name, empty outside VariablesFrom
	Value any
}

func (e *UnsupportedValueError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("ralph: variable %s: unsupported template value of type %T", e.Name, e.Value)
	}
	return fmt.Sprintf("ralph: unsupported template value of type %T", e.Value)
}

// MethodError wraps a failure while building one method of a contract.
type MethodError struct {
	Index int
	Err   error
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("ralph: method %d: %v", e.Index, e.Err)
}

func (e *MethodError) Unwrap() error {
	return e.Err
}

func describeValue(v TemplateValue) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
