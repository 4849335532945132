package ralph

import (
	"testing"
)

func TestDefaultBuildConfig(t *testing.T) {
	config := defaultBuildConfig()

	if config.parallelism != 1 {
		t.Errorf("Expected parallelism to be 1 by default, got %d", config.parallelism)
	}
}

func TestWithParallelism(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"sets custom parallelism", 8, 8},
		{"keeps sequential", 1, 1},
		{"clamps zero", 0, 1},
		{"clamps negative", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := defaultBuildConfig()
			WithParallelism(tt.n)(config)

			if config.parallelism != tt.want {
				t.Errorf("Expected parallelism to be %d, got %d", tt.want, config.parallelism)
			}
		})
	}
}

func TestWithParallelismSingleMethod(t *testing.T) {
	compiled := &TemplateContract{MethodsByteCode: []string{"{a:Bool}"}}

	got, err := BuildContractByteCode(compiled, TemplateVariables{"a": Bool(false)}, WithParallelism(4))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "00"+"01"+"01"+"04" {
		t.Errorf("Unexpected bytecode %s", got)
	}
}
