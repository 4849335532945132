package ralph

import (
	"encoding/hex"
	"regexp"
	"strings"
)

// Template type names accepted in placeholders.
const (
	TypeBool    = "Bool"
	TypeI256    = "I256"
	TypeU256    = "U256"
	TypeByteVec = "ByteVec"
	TypeAddress = "Address"
)

// placeholderRegex matches {name:Type} where name starts lowercase and Type uppercase.
var placeholderRegex = regexp.MustCompile(`\{([a-z][a-zA-Z0-9]*):([A-Z][a-zA-Z0-9]*)\}`)

// EncodeTemplateVariable encodes a value as the instruction that pushes it.
//
//	Bool    -> TrueConst | FalseConst
//	I256    -> I256Const || EncodeI256(v)
//	U256    -> U256Const || EncodeU256(v)
//	ByteVec -> BytesConst || EncodeByteVec(v)
//	Address -> AddressConst || EncodeAddress(v)
//
// Any other combination of type name and value fails with *TypeMismatchError.
func EncodeTemplateVariable(typeName string, value TemplateValue) ([]byte, error) {
	var (
		op      Instruction
		payload []byte
		err     error
	)

	switch v := value.(type) {
	case BoolValue:
		if typeName != TypeBool {
			break
		}
		if v {
			return []byte{TrueConst.Byte()}, nil
		}
		return []byte{FalseConst.Byte()}, nil

	case IntValue:
		if v.v == nil {
			break
		}
		switch typeName {
		case TypeI256:
			op = I256Const
			payload, err = EncodeI256(v.v)
		case TypeU256:
			op = U256Const
			payload, err = EncodeU256(v.v)
		default:
			return nil, &TypeMismatchError{Type: typeName, Value: value}
		}
		if err != nil {
			return nil, err
		}
		return append([]byte{op.Byte()}, payload...), nil

	case TextValue:
		switch typeName {
		case TypeByteVec:
			op = BytesConst
			payload, err = EncodeByteVec(string(v))
		case TypeAddress:
			op = AddressConst
			payload, err = EncodeAddress(string(v))
		default:
			return nil, &TypeMismatchError{Type: typeName, Value: value}
		}
		if err != nil {
			return nil, err
		}
		return append([]byte{op.Byte()}, payload...), nil
	}

	return nil, &TypeMismatchError{Type: typeName, Value: value}
}

// EncodeTemplateVariableHex is like EncodeTemplateVariable but returns lowercase hex.
func EncodeTemplateVariableHex(typeName string, value TemplateValue) (string, error) {
	encoded, err := EncodeTemplateVariable(typeName, value)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(encoded), nil
}

// Placeholder is a {name:Type} marker found in a bytecode template.
type Placeholder struct {
	Name  string
	Type  string
	Start int // byte offset of '{'
	End   int // byte offset just past '}'
}

// TemplatePlaceholders returns the placeholders of a template in order of appearance.
func TemplatePlaceholders(template string) []Placeholder {
	matches := placeholderRegex.FindAllStringSubmatchIndex(template, -1)
	placeholders := make([]Placeholder, 0, len(matches))
	for _, m := range matches {
		placeholders = append(placeholders, Placeholder{
			Name:  template[m[2]:m[3]],
			Type:  template[m[4]:m[5]],
			Start: m[0],
			End:   m[1],
		})
	}
	return placeholders
}

// BuildByteCode replaces every placeholder in template with the hex encoding
// of its variable. Text outside placeholders is copied unchanged. Repeated
// placeholders are encoded once per occurrence.
func BuildByteCode(template string, vars TemplateVariables) (string, error) {
	placeholders := TemplatePlaceholders(template)
	if len(placeholders) == 0 {
		return template, nil
	}

	var sb strings.Builder
	sb.Grow(len(template))

	last := 0
	for _, p := range placeholders {
		value, ok := vars[p.Name]
		if !ok {
			return "", &MissingVariableError{Name: p.Name}
		}
		encoded, err := EncodeTemplateVariableHex(p.Type, value)
		if err != nil {
			return "", err
		}
		sb.WriteString(template[last:p.Start])
		sb.WriteString(encoded)
		last = p.End
	}
	sb.WriteString(template[last:])

	return sb.String(), nil
}
