package interpreter

import "corelang/interpreter-go/pkg/runtime"

// Control signals implement error so evaluator calls can thread them up
// through arbitrary recursion depth the same way a true error propagates,
// while staying a disjoint channel a caller can type-switch away from
// errors before ever treating a raw error as a program failure.

type breakSignal struct{}

func (breakSignal) Error() string { return "break outside loop" }

type continueSignal struct{}

func (continueSignal) Error() string { return "continue outside loop" }

type returnSignal struct {
	value runtime.Value
}

func (returnSignal) Error() string { return "return outside function" }
