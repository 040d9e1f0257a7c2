package fractions

import (
	"strconv"
	"unicode"
)

// Token is one element of a tokenized expression, either a fraction value
// or an arithmetic operator.
type Token struct {
	kind tokenKind
	op   Op
	val  Rational
	text string
	pos  int
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenValue is a fraction literal.
	tokenValue
	// tokenOp is an arithmetic operator.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenValue:
		return "Value"
	case tokenOp:
		return "Op"
	}
	return "None"
}

// Value returns the token's fraction, if t is a value token.
func (t Token) Value() (Rational, bool) {
	return t.val, t.kind == tokenValue
}

// Operator returns the token's operator, if t is an operator token.
func (t Token) Operator() (Op, bool) {
	return t.op, t.kind == tokenOp
}

// Text returns the text the token was scanned from.
func (t Token) Text() string {
	return t.text
}

// Pos returns the 1-based rune column at which the token started.
func (t Token) Pos() int {
	return t.pos
}

func (t Token) String() string {
	switch t.kind {
	case tokenValue:
		return t.kind.String() + ":" + t.val.String() + "@" + strconv.Itoa(t.pos)
	case tokenOp:
		return t.kind.String() + ":" + t.op.String() + "@" + strconv.Itoa(t.pos)
	}
	return t.kind.String() + "@" + strconv.Itoa(t.pos)
}

// Equal reports whether two tokens mean the same thing: value tokens
// compare by their fractions and operator tokens by their operators. The
// scanned text and column do not participate, so a token scanned from
// "6/10" equals one scanned from "3/5".
func (t Token) Equal(u Token) bool {
	if t.kind != u.kind {
		return false
	}
	switch t.kind {
	case tokenValue:
		return t.val == u.val
	case tokenOp:
		return t.op == u.op
	}
	return true
}

// Op is an arithmetic operator. The four operators form two precedence
// ranks: addition and subtraction bind at rank 1, multiplication and
// division at rank 2.
type Op int

const (
	opNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// String returns the operator's canonical symbol.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Precedence returns the operator's binding rank, 1 for addition and
// subtraction or 2 for multiplication and division.
func (o Op) Precedence() int {
	switch o {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	}
	return 0
}

// apply computes the operator over its operands.
func (o Op) apply(x, y Rational) Rational {
	switch o {
	case OpAdd:
		return x.Add(y)
	case OpSub:
		return x.Sub(y)
	case OpMul:
		return x.Mul(y)
	case OpDiv:
		return x.Div(y)
	}
	panic("fractions: apply on invalid operator " + strconv.Itoa(int(o)))
}

// decodeOp matches a whole token against the operator symbols. The Unicode
// glyphs × and ÷ fold to their ASCII forms.
func decodeOp(s string) (Op, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*", "×":
		return OpMul, true
	case "/", "÷":
		return OpDiv, true
	}
	return opNone, false
}

// A field is one whitespace-delimited piece of an input line.
type field struct {
	text string
	col  int
}

// splitFields splits a line on runs of whitespace, keeping each piece's
// 1-based rune column.
func splitFields(line string) []field {
	var fs []field
	col := 0
	start, startCol := -1, 0
	for i, r := range line {
		col++
		if unicode.IsSpace(r) {
			if start >= 0 {
				fs = append(fs, field{line[start:i], startCol})
				start = -1
			}
			continue
		}
		if start < 0 {
			start, startCol = i, col
		}
	}
	if start >= 0 {
		fs = append(fs, field{line[start:], startCol})
	}
	return fs
}

// Tokenize splits a line into value and operator tokens. Tokens are
// whitespace-delimited: every maximal run of non-space runes is one token,
// so "1+2" is a single malformed literal rather than three tokens, and a
// leading sign belongs to its literal rather than being an operator. A
// blank line tokenizes to an empty sequence. A piece that is neither an
// operator symbol nor a fraction literal stops the scan with a
// *LiteralError.
func Tokenize(line string) ([]Token, error) {
	fs := splitFields(line)
	if len(fs) == 0 {
		return nil, nil
	}
	toks := make([]Token, 0, len(fs))
	for _, f := range fs {
		if op, ok := decodeOp(f.text); ok {
			toks = append(toks, Token{kind: tokenOp, op: op, text: f.text, pos: f.col})
			continue
		}
		val, err := Parse(f.text)
		if err != nil {
			return nil, &LiteralError{Text: f.text, Col: f.col}
		}
		toks = append(toks, Token{kind: tokenValue, val: val, text: f.text, pos: f.col})
	}
	return toks, nil
}
