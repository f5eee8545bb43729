package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	return string(out)
}

func writeProgram(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "program.cl")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRunPrintsExpectedOutput(t *testing.T) {
	path := writeProgram(t, "print(1, 2+3, 2*3, 7//2, 7%2, 7/2)\n")
	var code int
	out := captureStdout(t, func() {
		code = run([]string{path})
	})
	if code != 0 {
		t.Fatalf("run exit code = %d, want 0", code)
	}
	if out != "1 5 6 3 1 3.500000\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRunReportsNameErrorExitCode(t *testing.T) {
	path := writeProgram(t, "print(undefined_name)\n")
	var code int
	_ = captureStdout(t, func() {
		code = run([]string{path})
	})
	if code != 2 {
		t.Fatalf("exit code = %d, want 2 (NameError)", code)
	}
}

func TestRunVersionFlag(t *testing.T) {
	var code int
	out := captureStdout(t, func() {
		code = run([]string{"--version"})
	})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out != cliToolVersion+"\n" {
		t.Fatalf("got %q", out)
	}
}
