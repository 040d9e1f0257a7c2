package fractions

import "strconv"

// Solve tokenizes and evaluates one expression line. It is the shortcut
// for Tokenize followed by Eval.
func Solve(line string) (Rational, error) {
	toks, err := Tokenize(line)
	if err != nil {
		return NaN, err
	}
	return Eval(toks)
}

// Eval evaluates a tokenized infix expression. The grammar is values
// alternating with binary operators, beginning and ending on a value;
// operators of equal rank evaluate left to right. A sequence that breaks
// the grammar returns an *ExprError. The arithmetic itself never fails:
// special values flow through evaluation as values, so dividing by Zero
// evaluates to NaN rather than erroring.
func Eval(expr []Token) (Rational, error) {
	post, err := postfix(expr)
	if err != nil {
		return NaN, err
	}
	return fold(post), nil
}

// postfix reorders an infix token sequence into postfix, validating the
// value-operator alternation and the operand count as it goes.
func postfix(infix []Token) ([]Token, error) {
	out := make([]Token, 0, len(infix))
	var ops []Token
	values := 0
	// The previous token's variant, seeded as an operator so that a
	// leading operator fails the alternation check.
	prevOp := true
	for _, t := range infix {
		isOp := t.kind == tokenOp
		if isOp == prevOp {
			return nil, &ExprError{Col: t.pos, Tok: t.text}
		}
		prevOp = isOp
		if !isOp {
			values++
			out = append(out, t)
			continue
		}
		for len(ops) > 0 && ops[len(ops)-1].op.Precedence() >= t.op.Precedence() {
			out = append(out, ops[len(ops)-1])
			ops = ops[:len(ops)-1]
		}
		ops = append(ops, t)
	}
	for len(ops) > 0 {
		out = append(out, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	if operators := len(out) - values; values != operators+1 {
		// The alternation check leaves only two ways to get here: no
		// tokens at all, or an expression ending at an operator.
		err := &ExprError{}
		if len(infix) > 0 {
			last := infix[len(infix)-1]
			err.Col, err.Tok, err.End = last.pos, last.text, true
		}
		return nil, err
	}
	return out, nil
}

// fold evaluates a postfix token sequence over a value stack. postfix
// guarantees the sequence is well formed, so an impossible stack state
// panics.
func fold(post []Token) Rational {
	stack := make([]Rational, 0, len(post)/2+1)
	for _, t := range post {
		if t.kind != tokenOp {
			stack = append(stack, t.val)
			continue
		}
		if len(stack) < 2 {
			panic("fractions: underflowed value stack (bad postfix?)")
		}
		y := stack[len(stack)-1]
		x := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, t.op.apply(x, y))
	}
	if len(stack) != 1 {
		panic("fractions: inconsistent stack: " + strconv.Itoa(len(stack)) + " items (bad postfix?)")
	}
	return stack[0]
}
