package syntax

import (
	"fmt"
	"strconv"
	"strings"

	"corelang/interpreter-go/pkg/ast"
	"corelang/interpreter-go/pkg/bigint"
)

// Parser is a recursive-descent parser over the fixed precedence ladder
// spec §6 names: testlist > or_test > and_test > not_test > comparison >
// arith_expr > term > factor > power > atom_expr > atom.
type Parser struct {
	toks []Token
	pos  int
}

// Parse lexes and parses a complete program into a Module.
func Parse(src string) (*ast.Module, error) {
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &Parser{toks: toks}
	return p.parseModule()
}

func (p *Parser) cur() Token  { return p.toks[p.pos] }
func (p *Parser) atEnd() bool { return p.cur().Kind == TokEOF }

func (p *Parser) advance() Token {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool { return p.cur().Kind == kind }

func (p *Parser) checkOp(value string) bool {
	return p.cur().Kind == TokOp && p.cur().Value == value
}

func (p *Parser) matchOp(value string) bool {
	if p.checkOp(value) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectOp(value string) error {
	if !p.matchOp(value) {
		return p.errorf("expected %q, got %s", value, p.cur())
	}
	return nil
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	if !p.check(kind) {
		return Token{}, p.errorf("expected %s, got %s", kind, p.cur())
	}
	return p.advance(), nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{Line: p.cur().Line, Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) skipNewlines() {
	for p.check(TokNewline) {
		p.advance()
	}
}

func isKeywordToken(t Token, kw string) bool { return t.Kind == TokName && t.Value == kw }

//-----------------------------------------------------------------------------
// file_input / suite / statements
//-----------------------------------------------------------------------------

func (p *Parser) parseModule() (*ast.Module, error) {
	var body []ast.Statement
	p.skipNewlines()
	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt...)
		p.skipNewlines()
	}
	return ast.NewModule(body), nil
}

func (p *Parser) parseSuite() (*ast.Suite, error) {
	if _, err := p.expect(TokNewline); err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(TokIndent); err != nil {
		return nil, err
	}
	var body []ast.Statement
	for !p.check(TokDedent) && !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt...)
		p.skipNewlines()
	}
	if _, err := p.expect(TokDedent); err != nil {
		return nil, err
	}
	return ast.NewSuite(body), nil
}

// parseStatement returns a slice because a single logical line may carry
// several `;`-separated simple statements (spec's simple_stmt tier);
// funcdef/if_stmt/while_stmt are always standalone compound statements and
// never share a line with another statement.
func (p *Parser) parseStatement() ([]ast.Statement, error) {
	switch {
	case isKeywordToken(p.cur(), "def"):
		s, err := p.parseFuncDef()
		return []ast.Statement{s}, err
	case isKeywordToken(p.cur(), "if"):
		s, err := p.parseIfStmt()
		return []ast.Statement{s}, err
	case isKeywordToken(p.cur(), "while"):
		s, err := p.parseWhileStmt()
		return []ast.Statement{s}, err
	default:
		return p.parseSimpleStmtLine()
	}
}

// parseSimpleStmtLine parses one or more `;`-separated simple statements up
// to the end of the logical line.
func (p *Parser) parseSimpleStmtLine() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		s, err := p.parseSimpleStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if !p.matchOp(";") {
			break
		}
		if p.check(TokNewline) || p.atEnd() || p.check(TokDedent) {
			break
		}
	}
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) parseSimpleStmt() (ast.Statement, error) {
	switch {
	case isKeywordToken(p.cur(), "break"):
		p.advance()
		return ast.NewBreakStmt(), nil
	case isKeywordToken(p.cur(), "continue"):
		p.advance()
		return ast.NewContinueStmt(), nil
	case isKeywordToken(p.cur(), "return"):
		p.advance()
		var value ast.Expression
		if !p.check(TokNewline) && !p.atEnd() && !p.checkOp(";") {
			v, err := p.parseTestlist()
			if err != nil {
				return nil, err
			}
			value = v
		}
		return ast.NewReturnStmt(value), nil
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) expectLineEnd() error {
	if p.atEnd() || p.check(TokNewline) || p.check(TokDedent) {
		return nil
	}
	return p.errorf("expected end of line, got %s", p.cur())
}

func (p *Parser) parseFuncDef() (ast.Statement, error) {
	p.advance() // def
	nameTok, err := p.expect(TokName)
	if err != nil {
		return nil, err
	}
	if err := p.expectOp("("); err != nil {
		return nil, err
	}
	var params []string
	defaults := map[string]ast.Expression{}
	for !p.checkOp(")") {
		pname, err := p.expect(TokName)
		if err != nil {
			return nil, err
		}
		params = append(params, pname.Value)
		if p.matchOp("=") {
			def, err := p.parseTest()
			if err != nil {
				return nil, err
			}
			defaults[pname.Value] = def
		}
		if !p.matchOp(",") {
			break
		}
	}
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return ast.NewFuncDef(nameTok.Value, params, defaults, body), nil
}

func (p *Parser) parseIfStmt() (ast.Statement, error) {
	p.advance() // if
	var conds []ast.Expression
	var bodies []*ast.Suite
	cond, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	conds = append(conds, cond)
	bodies = append(bodies, body)

	var elseSuite *ast.Suite
	for isKeywordToken(p.cur(), "elif") {
		p.advance()
		c, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		b, err := p.parseSuite()
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
		bodies = append(bodies, b)
	}
	if isKeywordToken(p.cur(), "else") {
		p.advance()
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		b, err := p.parseSuite()
		if err != nil {
			return nil, err
		}
		elseSuite = b
	}
	return ast.NewIfStmt(conds, bodies, elseSuite), nil
}

func (p *Parser) parseWhileStmt() (ast.Statement, error) {
	p.advance() // while
	cond, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStmt(cond, body), nil
}

//-----------------------------------------------------------------------------
// expr_stmt: plain expression, assignment (incl. chained/unpacking), augassign
//-----------------------------------------------------------------------------

var augOps = []string{"+=", "-=", "*=", "/=", "//=", "%="}

func (p *Parser) parseExprStmt() (ast.Statement, error) {
	first, err := p.parseTestlist()
	if err != nil {
		return nil, err
	}

	for _, op := range augOps {
		if p.checkOp(op) {
			p.advance()
			name, ok := soleIdentifier(first)
			if !ok {
				return nil, p.errorf("augmented assignment target must be a single name")
			}
			rhs, err := p.parseTestlist()
			if err != nil {
				return nil, err
			}
			return ast.NewAugAssign(name, op, rhs), nil
		}
	}

	if !p.checkOp("=") {
		return ast.NewExprStmt(first), nil
	}

	groups := [][]*ast.Identifier{}
	g, err := identifierGroup(first)
	if err != nil {
		return nil, err
	}
	groups = append(groups, g)

	var value ast.Expression
	for p.matchOp("=") {
		next, err := p.parseTestlist()
		if err != nil {
			return nil, err
		}
		if p.checkOp("=") {
			g, err := identifierGroup(next)
			if err != nil {
				return nil, err
			}
			groups = append(groups, g)
			continue
		}
		value = next
	}
	return ast.NewAssignment(groups, value), nil
}

func soleIdentifier(e ast.Expression) (string, bool) {
	id, ok := e.(*ast.Identifier)
	if !ok {
		return "", false
	}
	return id.Name, true
}

// identifierGroup turns an assignment target (a bare name, or a Testlist of
// bare names for tuple-unpacking) into the Identifier slice Assignment
// stores.
func identifierGroup(e ast.Expression) ([]*ast.Identifier, error) {
	if id, ok := e.(*ast.Identifier); ok {
		return []*ast.Identifier{id}, nil
	}
	if tl, ok := e.(*ast.Testlist); ok {
		out := make([]*ast.Identifier, 0, len(tl.Items))
		for _, item := range tl.Items {
			id, ok := item.(*ast.Identifier)
			if !ok {
				return nil, fmt.Errorf("assignment target must be a name or a tuple of names")
			}
			out = append(out, id)
		}
		return out, nil
	}
	return nil, fmt.Errorf("invalid assignment target")
}

//-----------------------------------------------------------------------------
// testlist / or_test / and_test / not_test / comparison
//-----------------------------------------------------------------------------

func (p *Parser) parseTestlist() (ast.Expression, error) {
	first, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	items := []ast.Expression{first}
	for p.checkOp(",") {
		// Trailing comma before a line end ends the list without another item.
		p.advance()
		if p.check(TokNewline) || p.atEnd() || p.checkOp(")") || p.checkOp("=") || p.checkOp(";") {
			break
		}
		item, err := p.parseTest()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return ast.NewTestlist(items), nil
}

func (p *Parser) parseTest() (ast.Expression, error) { return p.parseOrTest() }

func (p *Parser) parseOrTest() (ast.Expression, error) {
	first, err := p.parseAndTest()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}
	for isKeywordToken(p.cur(), "or") {
		p.advance()
		next, err := p.parseAndTest()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	return ast.NewOrTest(operands), nil
}

func (p *Parser) parseAndTest() (ast.Expression, error) {
	first, err := p.parseNotTest()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}
	for isKeywordToken(p.cur(), "and") {
		p.advance()
		next, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	return ast.NewAndTest(operands), nil
}

func (p *Parser) parseNotTest() (ast.Expression, error) {
	if isKeywordToken(p.cur(), "not") {
		p.advance()
		operand, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		return ast.NewNotTest(operand), nil
	}
	return p.parseComparison()
}

var compareOps = []string{"==", "!=", "<=", ">=", "<", ">"}

func (p *Parser) parseComparison() (ast.Expression, error) {
	first, err := p.parseArithExpr()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}
	var ops []string
	for {
		matched := ""
		for _, op := range compareOps {
			if p.checkOp(op) {
				matched = op
				break
			}
		}
		if matched == "" {
			break
		}
		p.advance()
		next, err := p.parseArithExpr()
		if err != nil {
			return nil, err
		}
		ops = append(ops, matched)
		operands = append(operands, next)
	}
	return ast.NewComparison(operands, ops), nil
}

//-----------------------------------------------------------------------------
// arith_expr / term / factor / power / atom_expr
//-----------------------------------------------------------------------------

func (p *Parser) parseArithExpr() (ast.Expression, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}
	var ops []string
	for p.checkOp("+") || p.checkOp("-") {
		op := p.advance().Value
		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		operands = append(operands, next)
	}
	return ast.NewArithExpr(operands, ops), nil
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	operands := []ast.Expression{first}
	var ops []string
	for p.checkOp("*") || p.checkOp("/") || p.checkOp("//") || p.checkOp("%") {
		op := p.advance().Value
		next, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		operands = append(operands, next)
	}
	return ast.NewTerm(operands, ops), nil
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	if p.checkOp("+") || p.checkOp("-") {
		op := p.advance().Value
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return ast.NewFactor(op, operand), nil
	}
	return p.parsePower()
}

func (p *Parser) parsePower() (ast.Expression, error) {
	base, err := p.parseAtomExpr()
	if err != nil {
		return nil, err
	}
	if p.checkOp("**") {
		p.advance()
		exponent, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return ast.NewPower(base, exponent), nil
	}
	return ast.NewPower(base, nil), nil
}

func (p *Parser) parseAtomExpr() (ast.Expression, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.checkOp("(") {
		trailer, err := p.parseTrailer()
		if err != nil {
			return nil, err
		}
		return ast.NewAtomExpr(atom, trailer), nil
	}
	return ast.NewAtomExpr(atom, nil), nil
}

func (p *Parser) parseTrailer() (*ast.Trailer, error) {
	if err := p.expectOp("("); err != nil {
		return nil, err
	}
	var args []*ast.Argument
	for !p.checkOp(")") {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.matchOp(",") {
			break
		}
	}
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}
	return ast.NewTrailer(args), nil
}

func (p *Parser) parseArgument() (*ast.Argument, error) {
	if p.check(TokName) {
		save := p.pos
		name := p.advance().Value
		if p.matchOp("=") {
			value, err := p.parseTest()
			if err != nil {
				return nil, err
			}
			return ast.NewArgument(name, value), nil
		}
		p.pos = save
	}
	value, err := p.parseTest()
	if err != nil {
		return nil, err
	}
	return ast.NewArgument("", value), nil
}

//-----------------------------------------------------------------------------
// atom
//-----------------------------------------------------------------------------

func (p *Parser) parseAtom() (ast.Expression, error) {
	tok := p.cur()
	switch {
	case isKeywordToken(tok, "True"):
		p.advance()
		return ast.NewBoolLiteral(true), nil
	case isKeywordToken(tok, "False"):
		p.advance()
		return ast.NewBoolLiteral(false), nil
	case isKeywordToken(tok, "None"):
		p.advance()
		return ast.NewNoneLiteral(), nil
	case tok.Kind == TokName:
		p.advance()
		return ast.NewIdentifier(tok.Value), nil
	case tok.Kind == TokInt:
		p.advance()
		n, err := bigint.Parse(tok.Value)
		if err != nil {
			return nil, p.errorf("invalid integer literal %q", tok.Value)
		}
		return ast.NewIntLiteral(n), nil
	case tok.Kind == TokFloat:
		p.advance()
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.errorf("invalid float literal %q", tok.Value)
		}
		return ast.NewFloatLiteral(f), nil
	case tok.Kind == TokString:
		p.advance()
		value := tok.Value
		for p.check(TokString) {
			value += p.advance().Value
		}
		return ast.NewStrLiteral(value), nil
	case tok.Kind == TokFStringStart:
		p.advance()
		parts, err := parseFStringParts(tok.Value, tok.Line)
		if err != nil {
			return nil, err
		}
		return ast.NewFormatString(parts), nil
	case tok.Kind == TokOp && tok.Value == "(":
		p.advance()
		inner, err := p.parseTestlist()
		if err != nil {
			return nil, err
		}
		if err := p.expectOp(")"); err != nil {
			return nil, err
		}
		return ast.NewParenExpr(inner), nil
	}
	return nil, p.errorf("unexpected token %s", tok)
}

// parseFStringParts splits a decoded f-string body into literal and
// expression segments per §4.10: `{{`/`}}` escape to single braces, any
// other `{...}` holds an embedded expression parsed with its own Parser.
func parseFStringParts(body string, line int) ([]ast.FStringPart, error) {
	var parts []ast.FStringPart
	var lit strings.Builder
	i := 0
	for i < len(body) {
		c := body[i]
		switch {
		case c == '{' && i+1 < len(body) && body[i+1] == '{':
			lit.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(body) && body[i+1] == '}':
			lit.WriteByte('}')
			i += 2
		case c == '{':
			if lit.Len() > 0 {
				parts = append(parts, ast.FStringPart{Literal: lit.String()})
				lit.Reset()
			}
			end := strings.IndexByte(body[i+1:], '}')
			if end < 0 {
				return nil, &SyntaxError{Line: line, Message: "unterminated f-string expression"}
			}
			exprSrc := body[i+1 : i+1+end]
			expr, err := parseEmbeddedExpr(exprSrc, line)
			if err != nil {
				return nil, err
			}
			parts = append(parts, ast.FStringPart{Expr: expr})
			i += end + 2
		default:
			lit.WriteByte(c)
			i++
		}
	}
	if lit.Len() > 0 {
		parts = append(parts, ast.FStringPart{Literal: lit.String()})
	}
	return parts, nil
}

func parseEmbeddedExpr(src string, line int) (ast.Expression, error) {
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		return nil, err
	}
	// The fragment is parsed as a single testlist; whatever tokens follow it
	// (the fresh lexer's trailing EOF, or anything else) are not examined.
	sub := &Parser{toks: toks}
	expr, err := sub.parseTestlist()
	if err != nil {
		return nil, &SyntaxError{Line: line, Message: fmt.Sprintf("invalid f-string expression %q: %v", src, err)}
	}
	return expr, nil
}
