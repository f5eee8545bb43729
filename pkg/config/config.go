// Package config loads the interpreter's optional corelang.yml: runtime
// knobs that don't belong in the language itself (recursion limits, the
// mixed-type comparison policy, call tracing).
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the interpreter's runtime knobs. The zero value is a valid,
// fully-defaulted configuration — callers that never find a corelang.yml
// should use Default() rather than constructing one by hand.
type Config struct {
	MaxCallDepth      int  `yaml:"max_call_depth"`
	StrictComparisons bool `yaml:"strict_comparisons"`
	TraceCalls        bool `yaml:"trace_calls"`
}

const defaultMaxCallDepth = 10000

// Default returns the configuration used when no corelang.yml is found.
func Default() Config {
	return Config{MaxCallDepth: defaultMaxCallDepth}
}

// ValidationError aggregates every problem found in a loaded configuration,
// following the same one-error-reports-everything shape as the rest of this
// corpus's manifest loaders.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load parses a corelang.yml at path.
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.MaxCallDepth == 0 {
		cfg.MaxCallDepth = defaultMaxCallDepth
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs ValidationError
	if c.MaxCallDepth < 0 {
		errs.Issues = append(errs.Issues, "max_call_depth must not be negative")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// FileName is the conventional configuration file name this loader looks
// for while walking up from the program's entry path.
const FileName = "corelang.yml"

// Find walks upward from startDir looking for corelang.yml, the way a
// project-local manifest is conventionally discovered. It returns "" with a
// nil error when none is found — absence is not a failure, it just means
// Default() applies.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("config: resolve %s: %w", startDir, err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
