package ralph

// BuildOption configures BuildContractByteCode.
type BuildOption func(*buildConfig)

// buildConfig holds configuration for BuildContractByteCode.
type buildConfig struct {
	parallelism int
}

// defaultBuildConfig returns the default build configuration.
func defaultBuildConfig() *buildConfig {
	return &buildConfig{
		parallelism: 1,
	}
}

// WithParallelism sets how many methods are substituted concurrently.
// Default is 1 (sequential). Values below 1 are treated as 1.
// The output does not depend on this setting.
func WithParallelism(n int) BuildOption {
	return func(c *buildConfig) {
		if n < 1 {
			n = 1
		}
		c.parallelism = n
	}
}
