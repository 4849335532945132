package ralph

import (
	"encoding/hex"
	"math"
	"math/big"
	"strings"

	"golang.org/x/sync/errgroup"
)

// TemplateContract is a compiled contract whose method bodies may still
// contain {name:Type} placeholders.
type TemplateContract struct {
	// FieldLength is the number of contract fields. The node API spells the key "filedLength".
	FieldLength int `json:"filedLength"`

	// MethodsByteCode holds one hex template per method, in declaration order.
	MethodsByteCode []string `json:"methodsByteCode"`
}

// ContractByteCode is an assembled contract split back into its parts.
type ContractByteCode struct {
	FieldLength int
	Methods     []string // hex encoded method bodies
}

// BuildContractByteCode substitutes vars into every method template and
// assembles the contract bytecode:
//
//	I256(fieldLength) || I256(methodCount) || I256(offset_1) ... I256(offset_n) || method_1 ... method_n
//
// offset_k is the total byte length of methods 1..k.
func BuildContractByteCode(compiled *TemplateContract, vars TemplateVariables, opts ...BuildOption) (string, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	methods, err := buildMethods(compiled.MethodsByteCode, vars, cfg)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	writeI256 := func(n int64) error {
		encoded, err := EncodeI256(big.NewInt(n))
		if err != nil {
			return err
		}
		sb.WriteString(hex.EncodeToString(encoded))
		return nil
	}

	if err := writeI256(int64(compiled.FieldLength)); err != nil {
		return "", err
	}
	if err := writeI256(int64(len(methods))); err != nil {
		return "", err
	}

	var offset int64
	for _, m := range methods {
		offset += int64(len(m) / 2)
		if err := writeI256(offset); err != nil {
			return "", err
		}
	}
	for _, m := range methods {
		sb.WriteString(m)
	}

	return sb.String(), nil
}

// buildMethods substitutes every method. With parallelism above one the
// methods are built concurrently; the reported error is always the one of
// the lowest failing method index.
func buildMethods(templates []string, vars TemplateVariables, cfg *buildConfig) ([]string, error) {
	built := make([]string, len(templates))

	if cfg.parallelism <= 1 || len(templates) < 2 {
		for i, tmpl := range templates {
			m, err := buildMethod(tmpl, vars)
			if err != nil {
				return nil, &MethodError{Index: i, Err: err}
			}
			built[i] = m
		}
		return built, nil
	}

	errs := make([]error, len(templates))
	var g errgroup.Group
	g.SetLimit(cfg.parallelism)
	for i, tmpl := range templates {
		g.Go(func() error {
			built[i], errs[i] = buildMethod(tmpl, vars)
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, &MethodError{Index: i, Err: err}
		}
	}
	return built, nil
}

// buildMethod substitutes one method and checks the result is valid hex.
func buildMethod(template string, vars TemplateVariables) (string, error) {
	m, err := BuildByteCode(template, vars)
	if err != nil {
		return "", err
	}
	if _, err := hex.DecodeString(m); err != nil {
		return "", &FormatError{Kind: "hex", Input: m, Err: err}
	}
	return m, nil
}

// ParseContractByteCode splits assembled contract bytecode into its field
// length and method bodies. Useful for debugging and testing.
func ParseContractByteCode(hexStr string) (*ContractByteCode, error) {
	data, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, &FormatError{Kind: "hex", Input: hexStr, Err: err}
	}

	pos := 0
	readInt := func() (int, error) {
		v, n, err := DecodeI256(data[pos:])
		if err != nil {
			return 0, err
		}
		if !v.IsInt64() || v.Int64() < 0 || v.Int64() > math.MaxInt32 {
			return 0, ErrInvalidMethodIndex
		}
		pos += n
		return int(v.Int64()), nil
	}

	fieldLength, err := readInt()
	if err != nil {
		return nil, err
	}
	methodCount, err := readInt()
	if err != nil {
		return nil, err
	}
	if methodCount > len(data)-pos {
		return nil, ErrInvalidMethodIndex
	}

	offsets := make([]int, methodCount)
	prev := 0
	for i := range offsets {
		offsets[i], err = readInt()
		if err != nil {
			return nil, err
		}
		if offsets[i] < prev {
			return nil, ErrInvalidMethodIndex
		}
		prev = offsets[i]
	}

	body := data[pos:]
	if prev != len(body) {
		return nil, ErrInvalidMethodIndex
	}

	methods := make([]string, methodCount)
	start := 0
	for i, end := range offsets {
		methods[i] = hex.EncodeToString(body[start:end])
		start = end
	}

	return &ContractByteCode{
		FieldLength: fieldLength,
		Methods:     methods,
	}, nil
}
