// Package ast defines the syntax-tree node taxonomy spec §6 names. Nodes are
// opaque to any particular parser implementation: every node satisfies Node
// (Kind discrimination) and exposes its fields as typed Go struct fields, the
// same contract a hand-rolled or generated front end could equally produce.
// pkg/interpreter only ever imports this package, never pkg/syntax directly.
package ast

import "corelang/interpreter-go/pkg/bigint"

// Node is satisfied by every syntax-tree node. Kind reports the grammar rule
// the node was produced from, using the exact names spec §6 lists.
type Node interface {
	Kind() string
}

type base struct{ kind string }

func (b base) Kind() string { return b.kind }

// Statement is satisfied by every node that can appear in a suite's body.
type Statement interface {
	Node
	isStatement()
}

type stmtMarker struct{}

func (stmtMarker) isStatement() {}

// Expression is satisfied by every node that evaluates to a Value.
type Expression interface {
	Node
	isExpression()
}

type exprMarker struct{}

func (exprMarker) isExpression() {}

//-----------------------------------------------------------------------------
// file_input / suite
//-----------------------------------------------------------------------------

// Module is the root node: the whole program (kind "file_input").
type Module struct {
	base
	Body []Statement
}

func NewModule(body []Statement) *Module {
	return &Module{base: base{"file_input"}, Body: body}
}

// Suite is a block of statements (kind "suite") — a function body, or an
// if/while arm.
type Suite struct {
	base
	Body []Statement
}

func NewSuite(body []Statement) *Suite {
	return &Suite{base: base{"suite"}, Body: body}
}

//-----------------------------------------------------------------------------
// compound statements
//-----------------------------------------------------------------------------

// FuncDef declares a function (kind "funcdef"). Defaults is keyed by
// parameter name and holds only the trailing parameters that have one.
type FuncDef struct {
	base
	stmtMarker
	Name     string
	Params   []string
	Defaults map[string]Expression
	Body     *Suite
}

func NewFuncDef(name string, params []string, defaults map[string]Expression, body *Suite) *FuncDef {
	return &FuncDef{base: base{"funcdef"}, Name: name, Params: params, Defaults: defaults, Body: body}
}

// IfStmt is an if/elif*/else chain (kind "if_stmt"). Conds[i] guards
// Bodies[i]; Else runs when every cond is false (nil when there is no else).
type IfStmt struct {
	base
	stmtMarker
	Conds  []Expression
	Bodies []*Suite
	Else   *Suite
}

func NewIfStmt(conds []Expression, bodies []*Suite, els *Suite) *IfStmt {
	return &IfStmt{base: base{"if_stmt"}, Conds: conds, Bodies: bodies, Else: els}
}

// WhileStmt is a while loop (kind "while_stmt").
type WhileStmt struct {
	base
	stmtMarker
	Cond Expression
	Body *Suite
}

func NewWhileStmt(cond Expression, body *Suite) *WhileStmt {
	return &WhileStmt{base: base{"while_stmt"}, Cond: cond, Body: body}
}

//-----------------------------------------------------------------------------
// flow statements (break/continue/return) — not explicitly enumerated in
// spec §6's node list, but required by §4.9; named after the corresponding
// ANTLR Python3 grammar rules original_source walks.
//-----------------------------------------------------------------------------

type BreakStmt struct {
	base
	stmtMarker
}

func NewBreakStmt() *BreakStmt { return &BreakStmt{base: base{"break_stmt"}} }

type ContinueStmt struct {
	base
	stmtMarker
}

func NewContinueStmt() *ContinueStmt { return &ContinueStmt{base: base{"continue_stmt"}} }

// ReturnStmt's Value is nil for a bare `return`.
type ReturnStmt struct {
	base
	stmtMarker
	Value Expression
}

func NewReturnStmt(value Expression) *ReturnStmt {
	return &ReturnStmt{base: base{"return_stmt"}, Value: value}
}

//-----------------------------------------------------------------------------
// expr_stmt: bare expression, assignment (incl. chained/tuple-unpacking),
// augmented assignment
//-----------------------------------------------------------------------------

// ExprStmt is an expression evaluated for its side effects only (kind
// "expr_stmt").
type ExprStmt struct {
	base
	stmtMarker
	Value Expression
}

func NewExprStmt(value Expression) *ExprStmt {
	return &ExprStmt{base: base{"expr_stmt"}, Value: value}
}

// Assignment implements spec §4.6, including the chained form `a = b = c, d`:
// Targets holds one name-group per `=`-separated position before the final
// value, so `a, b = c = 1, 2` parses as Targets = [[a,b], [c]], Value = the
// testlist `1, 2`. Each group is bound independently against the flattened
// right-hand side, which is how Python's own chained assignment behaves and
// is a strict superset of the "single-name chained assignment" spec §4.6
// requires.
type Assignment struct {
	base
	stmtMarker
	Targets [][]*Identifier
	Value   Expression
}

func NewAssignment(targets [][]*Identifier, value Expression) *Assignment {
	return &Assignment{base: base{"expr_stmt"}, Targets: targets, Value: value}
}

// AugAssign implements spec §4.6's augmented assignment; the left-hand side
// is always a bare name (no indexed targets exist in this grammar).
type AugAssign struct {
	base
	stmtMarker
	Name  string
	Op    string // "+=", "-=", "*=", "/=", "//=", "%="
	Value Expression
}

func NewAugAssign(name, op string, value Expression) *AugAssign {
	return &AugAssign{base: base{"expr_stmt"}, Name: name, Op: op, Value: value}
}

//-----------------------------------------------------------------------------
// boolean/comparison tiers
//-----------------------------------------------------------------------------

// OrTest is a chain of `or`-joined operands (kind "or_test"), evaluated
// left to right with short-circuiting (spec §4.4).
type OrTest struct {
	base
	exprMarker
	Operands []Expression
}

func NewOrTest(operands []Expression) Expression {
	if len(operands) == 1 {
		return operands[0]
	}
	return &OrTest{base: base{"or_test"}, Operands: operands}
}

// AndTest is a chain of `and`-joined operands (kind "and_test").
type AndTest struct {
	base
	exprMarker
	Operands []Expression
}

func NewAndTest(operands []Expression) Expression {
	if len(operands) == 1 {
		return operands[0]
	}
	return &AndTest{base: base{"and_test"}, Operands: operands}
}

// NotTest is a `not` prefix (kind "not_test"). A bare comparison with no
// `not` is represented directly by that comparison node, not wrapped here.
type NotTest struct {
	base
	exprMarker
	Operand Expression
}

func NewNotTest(operand Expression) *NotTest {
	return &NotTest{base: base{"not_test"}, Operand: operand}
}

// Comparison is a chained comparison `e0 op1 e1 op2 e2 ...` (kind
// "comparison"); Ops[i] relates Operands[i] and Operands[i+1]. A single
// operand with no operator is represented directly by that operand.
type Comparison struct {
	base
	exprMarker
	Operands []Expression
	Ops      []string // "<", ">", "<=", ">=", "==", "!="
}

func NewComparison(operands []Expression, ops []string) Expression {
	if len(operands) == 1 {
		return operands[0]
	}
	return &Comparison{base: base{"comparison"}, Operands: operands, Ops: ops}
}

//-----------------------------------------------------------------------------
// arithmetic tiers
//-----------------------------------------------------------------------------

// ArithExpr is a left-associative chain of +/- (kind "arith_expr").
type ArithExpr struct {
	base
	exprMarker
	Operands []Expression
	Ops      []string // "+", "-"
}

func NewArithExpr(operands []Expression, ops []string) Expression {
	if len(operands) == 1 {
		return operands[0]
	}
	return &ArithExpr{base: base{"arith_expr"}, Operands: operands, Ops: ops}
}

// Term is a left-associative chain of * / // % (kind "term").
type Term struct {
	base
	exprMarker
	Operands []Expression
	Ops      []string // "*", "/", "//", "%"
}

func NewTerm(operands []Expression, ops []string) Expression {
	if len(operands) == 1 {
		return operands[0]
	}
	return &Term{base: base{"term"}, Operands: operands, Ops: ops}
}

// Factor is a unary +/- applied to another factor (kind "factor"). An
// operand with no unary sign is represented directly by that operand.
type Factor struct {
	base
	exprMarker
	Op      string // "+" or "-"
	Operand Expression
}

func NewFactor(op string, operand Expression) *Factor {
	return &Factor{base: base{"factor"}, Op: op, Operand: operand}
}

// Power is the optional `**` tier scenario §8.1 exercises, right-associative
// as in the reference grammar's `power: atom_expr ['**' factor]`. A base
// with no exponent is represented directly by that base.
type Power struct {
	base
	exprMarker
	Base     Expression
	Exponent Expression
}

func NewPower(base_ Expression, exponent Expression) Expression {
	if exponent == nil {
		return base_
	}
	return &Power{base: base{"power"}, Base: base_, Exponent: exponent}
}

//-----------------------------------------------------------------------------
// atom_expr / trailer / atom
//-----------------------------------------------------------------------------

// AtomExpr is an atom optionally followed by a call trailer (kind
// "atom_expr"). An atom with no trailer is represented directly by that
// atom.
type AtomExpr struct {
	base
	exprMarker
	Atom    Expression
	Trailer *Trailer
}

func NewAtomExpr(atom Expression, trailer *Trailer) Expression {
	if trailer == nil {
		return atom
	}
	return &AtomExpr{base: base{"atom_expr"}, Atom: atom, Trailer: trailer}
}

// Trailer is a call's argument list, `(args...)` (kind "trailer").
type Trailer struct {
	base
	Args []*Argument
}

func NewTrailer(args []*Argument) *Trailer {
	return &Trailer{base: base{"trailer"}, Args: args}
}

// Argument is one call argument (kind "argument"); Name is empty for a
// positional argument.
type Argument struct {
	base
	Name  string
	Value Expression
}

func NewArgument(name string, value Expression) *Argument {
	return &Argument{base: base{"argument"}, Name: name, Value: value}
}

// Identifier is a bare name reference (kind "atom").
type Identifier struct {
	base
	exprMarker
	Name string
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{base: base{"atom"}, Name: name}
}

// IntLiteral is an integer literal (kind "atom").
type IntLiteral struct {
	base
	exprMarker
	Value bigint.Int
}

func NewIntLiteral(v bigint.Int) *IntLiteral {
	return &IntLiteral{base: base{"atom"}, Value: v}
}

// FloatLiteral is a floating-point literal (kind "atom").
type FloatLiteral struct {
	base
	exprMarker
	Value float64
}

func NewFloatLiteral(v float64) *FloatLiteral {
	return &FloatLiteral{base: base{"atom"}, Value: v}
}

// StrLiteral is a string literal with escapes already decoded (kind "atom").
type StrLiteral struct {
	base
	exprMarker
	Value string
}

func NewStrLiteral(v string) *StrLiteral {
	return &StrLiteral{base: base{"atom"}, Value: v}
}

// BoolLiteral is True/False (kind "atom").
type BoolLiteral struct {
	base
	exprMarker
	Value bool
}

func NewBoolLiteral(v bool) *BoolLiteral {
	return &BoolLiteral{base: base{"atom"}, Value: v}
}

// NoneLiteral is the None literal (kind "atom").
type NoneLiteral struct {
	base
	exprMarker
}

func NewNoneLiteral() *NoneLiteral { return &NoneLiteral{base: base{"atom"}} }

// ParenExpr is a parenthesized sub-expression, `(expr)` (kind "atom"); it
// exists only to group a single testlist value through the atom tier, the
// Inner expression already carries the grouped value.
type ParenExpr struct {
	base
	exprMarker
	Inner Expression
}

func NewParenExpr(inner Expression) *ParenExpr {
	return &ParenExpr{base: base{"atom"}, Inner: inner}
}

//-----------------------------------------------------------------------------
// testlist
//-----------------------------------------------------------------------------

// Testlist is a comma-separated expression list (kind "testlist"). A single
// item testlist is represented directly by that item (see NewTestlist);
// more than one item evaluates to a Tuple.
type Testlist struct {
	base
	exprMarker
	Items []Expression
}

func NewTestlist(items []Expression) Expression {
	if len(items) == 1 {
		return items[0]
	}
	return &Testlist{base: base{"testlist"}, Items: items}
}

//-----------------------------------------------------------------------------
// format_string
//-----------------------------------------------------------------------------

// FStringPart is one piece of an f-string: either a literal run of text
// (Expr == nil) or an embedded expression (Literal == "").
type FStringPart struct {
	Literal string
	Expr    Expression
}

// FormatString is an f-string (kind "format_string"), interleaving literal
// text with embedded expressions per spec §4.10.
type FormatString struct {
	base
	exprMarker
	Parts []FStringPart
}

func NewFormatString(parts []FStringPart) *FormatString {
	return &FormatString{base: base{"format_string"}, Parts: parts}
}
