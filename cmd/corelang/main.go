// Command corelang reads a source program (from a path argument or stdin),
// parses it, and evaluates it, mirroring the teacher CLI's
// `run(args) int` + os.Exit dispatch shape.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"corelang/interpreter-go/pkg/config"
	"corelang/interpreter-go/pkg/interpreter"
	"corelang/interpreter-go/pkg/syntax"
)

const cliToolVersion = "corelang 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "--help", "-h":
			printUsage()
			return 0
		case "--version", "-V":
			fmt.Fprintln(os.Stdout, cliToolVersion)
			return 0
		}
	}

	var entryPath string
	if len(args) > 0 {
		entryPath = args[0]
	}

	src, searchDir, err := readSource(entryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read program: %v\n", err)
		return 1
	}

	cfg, err := loadConfig(searchDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", config.FileName, err)
		return 1
	}

	mod, err := syntax.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "syntax error: %v\n", err)
		return 1
	}

	interp := interpreter.New(interpreter.Options{
		MaxCallDepth:      cfg.MaxCallDepth,
		StrictComparisons: cfg.StrictComparisons,
		TraceCalls:        cfg.TraceCalls,
		Stdout:            os.Stdout,
	})

	if err := interp.Run(mod); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitCodeFor(err)
	}
	return 0
}

func readSource(entryPath string) (src string, searchDir string, err error) {
	if entryPath == "" || entryPath == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		cwd, _ := os.Getwd()
		return string(data), cwd, nil
	}
	data, err := os.ReadFile(entryPath)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", entryPath, err)
	}
	return string(data), filepath.Dir(entryPath), nil
}

func loadConfig(searchDir string) (config.Config, error) {
	path, err := config.Find(searchDir)
	if err != nil {
		return config.Config{}, err
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// exitCodeFor maps every spec-defined error kind to a distinct non-zero
// status so scripts invoking this binary can branch on failure category.
func exitCodeFor(err error) int {
	evalErr, ok := err.(*interpreter.EvalError)
	if !ok {
		return 1
	}
	return codeForKind(evalErr.Kind)
}

func codeForKind(kind string) int {
	switch kind {
	case "NameError":
		return 2
	case "TypeError":
		return 3
	case "ValueError":
		return 4
	case "InvalidLiteral":
		return 5
	case "DivisionByZero":
		return 6
	case "InternalError":
		return 7
	default:
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  corelang <file>")
	fmt.Fprintln(os.Stderr, "  corelang -        (read program from stdin)")
	fmt.Fprintln(os.Stderr, "  corelang --version")
}
