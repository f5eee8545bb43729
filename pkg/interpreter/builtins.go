package interpreter

import (
	"fmt"

	"corelang/interpreter-go/pkg/runtime"
)

// builtins are resolved only when no user function shadows the name (§4.8).
var builtins = map[string]func(*Interpreter, []runtime.Value) (runtime.Value, error){
	"print": builtinPrint,
	"int":   builtinCoerce("int", runtime.ToInt),
	"float": builtinCoerce("float", runtime.ToFloat),
	"str":   builtinStr,
	"bool":  builtinBool,
}

func builtinPrint(in *Interpreter, args []runtime.Value) (runtime.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = runtime.ToStr(a)
	}
	line := ""
	for i, p := range parts {
		if i > 0 {
			line += " "
		}
		line += p
	}
	fmt.Fprintln(in.stdout, line)
	return runtime.None, nil
}

func builtinCoerce(name string, fn func(runtime.Value) (runtime.Value, error)) func(*Interpreter, []runtime.Value) (runtime.Value, error) {
	return func(in *Interpreter, args []runtime.Value) (runtime.Value, error) {
		if len(args) != 1 {
			return nil, typeError("%s() takes exactly one argument (%d given)", name, len(args))
		}
		v, err := fn(args[0])
		if err != nil {
			if ce, ok := err.(*runtime.CoercionError); ok {
				return nil, &EvalError{Kind: ce.Kind, Message: ce.Msg}
			}
			return nil, err
		}
		return v, nil
	}
}

func builtinStr(in *Interpreter, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, typeError("str() takes exactly one argument (%d given)", len(args))
	}
	return runtime.StrValue{Val: runtime.ToStr(args[0])}, nil
}

func builtinBool(in *Interpreter, args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, typeError("bool() takes exactly one argument (%d given)", len(args))
	}
	return runtime.Bool(runtime.Truthy(args[0])), nil
}
