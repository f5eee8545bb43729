package interpreter

import (
	"corelang/interpreter-go/pkg/ast"
	"corelang/interpreter-go/pkg/runtime"
)

// execStatement dispatches on the concrete node type, mirroring the
// syntax-tree's own tiering rather than re-deriving it from Kind() strings.
// Only funcdef, if_stmt, and while_stmt introduce structure beyond a plain
// expression/assignment statement; neither if nor while pushes its own
// frame — only a function call does — so bindings made inside a branch or
// loop body land in the enclosing function or module frame directly.
func (in *Interpreter) execStatement(stmt ast.Statement, env *runtime.Environment) error {
	switch s := stmt.(type) {
	case *ast.FuncDef:
		return in.execFuncDef(s, env)
	case *ast.IfStmt:
		return in.execIfStmt(s, env)
	case *ast.WhileStmt:
		return in.execWhileStmt(s, env)
	case *ast.BreakStmt:
		return breakSignal{}
	case *ast.ContinueStmt:
		return continueSignal{}
	case *ast.ReturnStmt:
		return in.execReturnStmt(s, env)
	case *ast.Assignment:
		return in.execAssignment(s, env)
	case *ast.AugAssign:
		return in.execAugAssign(s, env)
	case *ast.ExprStmt:
		_, err := in.eval(s.Value, env)
		return err
	default:
		return internalError("unknown statement node %s", stmt.Kind())
	}
}

func (in *Interpreter) execSuite(suite *ast.Suite, env *runtime.Environment) error {
	for _, stmt := range suite.Body {
		if err := in.execStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execFuncDef(s *ast.FuncDef, env *runtime.Environment) error {
	defaults := make(map[string]runtime.Value, len(s.Defaults))
	for name, expr := range s.Defaults {
		v, err := in.eval(expr, env)
		if err != nil {
			return err
		}
		defaults[name] = v
	}
	in.functions.Define(s.Name, &runtime.FunctionDef{
		Params:   s.Params,
		Defaults: defaults,
		Body:     s.Body,
	})
	return nil
}

func (in *Interpreter) execIfStmt(s *ast.IfStmt, env *runtime.Environment) error {
	for i, cond := range s.Conds {
		v, err := in.eval(cond, env)
		if err != nil {
			return err
		}
		if runtime.Truthy(v) {
			return in.execSuite(s.Bodies[i], env)
		}
	}
	if s.Else != nil {
		return in.execSuite(s.Else, env)
	}
	return nil
}

func (in *Interpreter) execWhileStmt(s *ast.WhileStmt, env *runtime.Environment) error {
	for {
		v, err := in.eval(s.Cond, env)
		if err != nil {
			return err
		}
		if !runtime.Truthy(v) {
			return nil
		}
		err = in.execSuite(s.Body, env)
		if err == nil {
			continue
		}
		if _, ok := err.(breakSignal); ok {
			return nil
		}
		if _, ok := err.(continueSignal); ok {
			continue
		}
		return err
	}
}

func (in *Interpreter) execReturnStmt(s *ast.ReturnStmt, env *runtime.Environment) error {
	if s.Value == nil {
		return returnSignal{value: runtime.None}
	}
	v, err := in.eval(s.Value, env)
	if err != nil {
		return err
	}
	return returnSignal{value: v}
}

// execAssignment implements §4.6's simple and chained/unpacking assignment.
// The right-hand side is evaluated exactly once; every `=`-separated target
// group is then bound independently against its flattened values, which
// handles both scalar chained assignment (`a = b = 5`) and tuple-unpacking
// chains uniformly.
func (in *Interpreter) execAssignment(s *ast.Assignment, env *runtime.Environment) error {
	rhs, err := in.eval(s.Value, env)
	if err != nil {
		return err
	}
	for _, group := range s.Targets {
		if err := bindTargetGroup(group, rhs, env); err != nil {
			return err
		}
	}
	return nil
}

func bindTargetGroup(names []*ast.Identifier, value runtime.Value, env *runtime.Environment) error {
	if len(names) == 1 {
		env.Bind(names[0].Name, value)
		return nil
	}
	tuple, ok := value.(*runtime.TupleValue)
	if !ok {
		return valueError("cannot unpack non-tuple value into %d names", len(names))
	}
	if len(tuple.Elems) != len(names) {
		return valueError("cannot unpack %d values into %d names", len(tuple.Elems), len(names))
	}
	for i, name := range names {
		env.Bind(name.Name, tuple.Elems[i])
	}
	return nil
}

func (in *Interpreter) execAugAssign(s *ast.AugAssign, env *runtime.Environment) error {
	current, err := in.lookup(s.Name, env)
	if err != nil {
		return nameError(s.Name)
	}
	rhs, err := in.eval(s.Value, env)
	if err != nil {
		return err
	}
	op := s.Op[:len(s.Op)-1] // "+=" -> "+"
	result, err := applyBinaryOp(op, current, rhs)
	if err != nil {
		return err
	}
	env.Bind(s.Name, result)
	return nil
}
