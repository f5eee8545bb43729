// Package interpreter walks a pkg/ast syntax tree and evaluates it against
// the pkg/runtime value model, implementing lexical scoping, user-defined
// functions, control flow, and formatted string interpolation.
package interpreter

import (
	"io"
	"log"
	"os"

	"corelang/interpreter-go/pkg/ast"
	"corelang/interpreter-go/pkg/runtime"
)

// Options configures an Interpreter's non-default behavior; every field has
// a zero-value-is-default meaning so the caller rarely needs to set all of
// them.
type Options struct {
	// MaxCallDepth bounds recursion depth; zero means use the default.
	MaxCallDepth int
	// StrictComparisons makes ordering comparisons between incompatible
	// value kinds raise TypeError instead of silently returning false
	// (spec's ordering-comparison Open Question, opt-in).
	StrictComparisons bool
	// TraceCalls logs every user function call and return via Logger.
	TraceCalls bool
	// Stdout receives print() output; defaults to os.Stdout.
	Stdout io.Writer
	// Logger receives call tracing when TraceCalls is set; defaults to a
	// logger writing to os.Stderr with a "corelang:" prefix.
	Logger *log.Logger
}

const defaultMaxCallDepth = 10000

// Interpreter owns the module-level environment and function table for one
// program run. It is not safe for concurrent use — spec §5 mandates
// single-threaded execution and this type has no internal synchronization.
type Interpreter struct {
	global    *runtime.Environment
	functions *runtime.FunctionTable
	stdout    io.Writer
	logger    *log.Logger

	maxCallDepth      int
	strictComparisons bool
	traceCalls        bool
	callDepth         int
}

// New creates an Interpreter with a fresh module scope and empty function
// table.
func New(opts Options) *Interpreter {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "corelang: ", 0)
	}
	maxCallDepth := opts.MaxCallDepth
	if maxCallDepth <= 0 {
		maxCallDepth = defaultMaxCallDepth
	}
	return &Interpreter{
		global:            runtime.NewEnvironment(nil),
		functions:         runtime.NewFunctionTable(),
		stdout:            stdout,
		logger:            logger,
		maxCallDepth:      maxCallDepth,
		strictComparisons: opts.StrictComparisons,
		traceCalls:        opts.TraceCalls,
	}
}

// Run evaluates every top-level statement of mod against the module scope.
// It returns the first EvalError encountered (control signals that escape
// to the top level are reported as InternalError, since a conforming
// program never raises break/continue/return outside a loop or function).
func (in *Interpreter) Run(mod *ast.Module) error {
	for _, stmt := range mod.Body {
		if err := in.execStatement(stmt, in.global); err != nil {
			if _, ok := err.(breakSignal); ok {
				return internalError("break outside loop")
			}
			if _, ok := err.(continueSignal); ok {
				return internalError("continue outside loop")
			}
			if _, ok := err.(returnSignal); ok {
				return internalError("return outside function")
			}
			return err
		}
	}
	return nil
}
