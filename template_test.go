package ralph

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/mr-tron/base58"
)

func TestEncodeTemplateVariable(t *testing.T) {
	address := append([]byte{0x03}, bytes.Repeat([]byte{0x5a}, 32)...)

	tests := []struct {
		name     string
		typeName string
		value    TemplateValue
		want     []byte
	}{
		{"Bool true", TypeBool, Bool(true), []byte{3}},
		{"Bool false", TypeBool, Bool(false), []byte{4}},
		{"I256 positive", TypeI256, Int64(5), []byte{18, 0x05}},
		{"I256 negative", TypeI256, Int64(-1), []byte{18, 0x3f}},
		{"U256", TypeU256, Int64(64), []byte{19, 0x40, 0x40}},
		{"ByteVec", TypeByteVec, Text("00ff"), []byte{20, 0x02, 0x00, 0xff}},
		{"Address", TypeAddress, Text(base58.Encode(address)), append([]byte{21}, address...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeTemplateVariable(tt.typeName, tt.value)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Expected %x, got %x", tt.want, got)
			}
		})
	}
}

func TestEncodeTemplateVariableTypeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		value    TemplateValue
	}{
		{"string for Bool", TypeBool, Text("true")},
		{"integer for Bool", TypeBool, Int64(1)},
		{"bool for I256", TypeI256, Bool(true)},
		{"string for U256", TypeU256, Text("10")},
		{"integer for ByteVec", TypeByteVec, Int64(0)},
		{"bool for Address", TypeAddress, Bool(false)},
		{"unknown type", "U8", Int64(1)},
		{"lower case type", "bool", Bool(true)},
		{"zero IntValue", TypeI256, IntValue{}},
		{"nil value", TypeBool, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeTemplateVariable(tt.typeName, tt.value)
			if got != nil {
				t.Errorf("Expected no output, got %x", got)
			}

			var mismatch *TypeMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("Expected TypeMismatchError, got %v", err)
			}
			if mismatch.Type != tt.typeName {
				t.Errorf("Expected type %s, got %s", tt.typeName, mismatch.Type)
			}
		})
	}
}

func TestEncodeTemplateVariablePropagatesErrors(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		_, err := EncodeTemplateVariable(TypeU256, Int64(-1))
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("Expected RangeError, got %v", err)
		}
	})

	t.Run("I256 range", func(t *testing.T) {
		_, err := EncodeTemplateVariable(TypeI256, Int(new(big.Int).Lsh(big.NewInt(1), 255)))
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("Expected RangeError, got %v", err)
		}
	})

	t.Run("hex format", func(t *testing.T) {
		_, err := EncodeTemplateVariable(TypeByteVec, Text("zz"))
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Errorf("Expected FormatError, got %v", err)
		}
	})

	t.Run("base58 format", func(t *testing.T) {
		_, err := EncodeTemplateVariable(TypeAddress, Text("0x1234"))
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Errorf("Expected FormatError, got %v", err)
		}
	})
}

func TestEncodeTemplateVariableHex(t *testing.T) {
	got, err := EncodeTemplateVariableHex(TypeU256, Uint64(16384))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "1380004000" {
		t.Errorf("Expected 1380004000, got %s", got)
	}

	if _, err := EncodeTemplateVariableHex(TypeBool, Int64(0)); err == nil {
		t.Error("Expected error for mismatched value")
	}
}

func TestTemplatePlaceholders(t *testing.T) {
	template := "00{a:Bool}11{contractId:ByteVec}{X:Bool}{b1:U256}{c:u256}"

	got := TemplatePlaceholders(template)
	want := []Placeholder{
		{Name: "a", Type: "Bool", Start: 2, End: 10},
		{Name: "contractId", Type: "ByteVec", Start: 12, End: 32},
		{Name: "b1", Type: "U256", Start: 40, End: 49},
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d placeholders, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Placeholder %d: expected %+v, got %+v", i, want[i], got[i])
		}
		if template[got[i].Start:got[i].End] != "{"+got[i].Name+":"+got[i].Type+"}" {
			t.Errorf("Placeholder %d span does not cover the marker", i)
		}
	}
}

func TestBuildByteCode(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     TemplateVariables
		want     string
	}{
		{
			name:     "repeated variable",
			template: "a{x:Bool}b{x:Bool}c",
			vars:     TemplateVariables{"x": Bool(true)},
			want:     "a03b03c",
		},
		{
			name:     "no placeholders",
			template: "0102ff",
			vars:     nil,
			want:     "0102ff",
		},
		{
			name:     "adjacent placeholders",
			template: "{a:U256}{b:I256}",
			vars:     TemplateVariables{"a": Int64(1), "b": Int64(-2)},
			want:     "1301" + "123e",
		},
		{
			name:     "byte vector",
			template: "00{id:ByteVec}00",
			vars:     TemplateVariables{"id": Text("abcd")},
			want:     "00" + "1402abcd" + "00",
		},
		{
			name:     "non matching markers pass through",
			template: "{Bad:Bool}{ok:Bool}{bad:bool}",
			vars:     TemplateVariables{"ok": Bool(false)},
			want:     "{Bad:Bool}04{bad:bool}",
		},
		{
			name:     "unused variables are ignored",
			template: "{a:Bool}",
			vars:     TemplateVariables{"a": Bool(true), "b": Text("zz")},
			want:     "03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildByteCode(tt.template, tt.vars)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestBuildByteCodeMissingVariable(t *testing.T) {
	got, err := BuildByteCode("{y:U256}", TemplateVariables{})
	if got != "" {
		t.Errorf("Expected no output, got %q", got)
	}

	var missing *MissingVariableError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingVariableError, got %v", err)
	}
	if missing.Name != "y" {
		t.Errorf("Expected name y, got %s", missing.Name)
	}
	if !strings.Contains(err.Error(), "y") {
		t.Errorf("Error message should name the variable: %s", err)
	}
}

func TestBuildByteCodeFailsWholeCall(t *testing.T) {
	vars := TemplateVariables{"a": Bool(true), "b": Text("00")}

	got, err := BuildByteCode("{a:Bool}{b:Bool}{a:Bool}", vars)
	if got != "" {
		t.Errorf("Expected no partial output, got %q", got)
	}

	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Expected TypeMismatchError, got %v", err)
	}
	if mismatch.Value != Text("00") {
		t.Errorf("Expected offending value \"00\", got %v", mismatch.Value)
	}
}
