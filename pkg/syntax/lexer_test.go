package syntax

import "testing"

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, toks []Token, want []TokenKind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestLexSimpleAssignment(t *testing.T) {
	toks, err := NewLexer("x = 1\n").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	assertKinds(t, toks, []TokenKind{TokName, TokOp, TokInt, TokNewline, TokEOF})
}

func TestLexIndentDedent(t *testing.T) {
	src := "if x:\n    y = 1\n    z = 2\nw = 3\n"
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	// if x : NEWLINE INDENT y = 1 NEWLINE z = 2 NEWLINE DEDENT w = 3 NEWLINE EOF
	want := []TokenKind{
		TokName, TokName, TokOp, TokNewline,
		TokIndent,
		TokName, TokOp, TokInt, TokNewline,
		TokName, TokOp, TokInt, TokNewline,
		TokDedent,
		TokName, TokOp, TokInt, TokNewline,
		TokEOF,
	}
	assertKinds(t, toks, want)
}

func TestLexRejectsTabs(t *testing.T) {
	_, err := NewLexer("if x:\n\ty = 1\n").Tokenize()
	if err == nil {
		t.Fatalf("expected an IndentationError for a tab-indented line")
	}
	if _, ok := err.(*IndentationError); !ok {
		t.Fatalf("got %T, want *IndentationError", err)
	}
}

func TestLexBlankAndCommentLinesIgnoredForIndentation(t *testing.T) {
	src := "if x:\n    y = 1\n\n    # comment\n    z = 2\n"
	toks, err := NewLexer(src).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	indents := 0
	dedents := 0
	for _, tok := range toks {
		if tok.Kind == TokIndent {
			indents++
		}
		if tok.Kind == TokDedent {
			dedents++
		}
	}
	if indents != 1 || dedents != 1 {
		t.Fatalf("indents=%d dedents=%d, want 1 and 1", indents, dedents)
	}
}

func TestLexOperators(t *testing.T) {
	toks, err := NewLexer("a//=1\n").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[1].Value != "//=" {
		t.Fatalf("got %q, want //=", toks[1].Value)
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks, err := NewLexer(`"a\nb"` + "\n").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[0].Value != "a\nb" {
		t.Fatalf("got %q", toks[0].Value)
	}
}

func TestLexSemicolonSeparatesStatements(t *testing.T) {
	toks, err := NewLexer("a=1; b=2\n").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []TokenKind{
		TokName, TokOp, TokInt, TokOp,
		TokName, TokOp, TokInt, TokNewline, TokEOF,
	}
	assertKinds(t, toks, want)
	if toks[3].Value != ";" {
		t.Fatalf("got %q, want ;", toks[3].Value)
	}
}

func TestLexFloatVsInt(t *testing.T) {
	toks, err := NewLexer("1 1.5 1e3 1.5e-2\n").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []TokenKind{TokInt, TokFloat, TokFloat, TokFloat, TokNewline, TokEOF}
	assertKinds(t, toks, want)
}
