package fractions

import "strconv"

// ExprError indicates a token sequence that does not form a valid
// expression: values must alternate with operators, starting and ending on
// a value. It implements InputError.
type ExprError struct {
	// Col is the rune column of the token where the problem was found, or
	// 0 for an empty expression.
	Col int
	// Tok is the text of that token. It is empty for an empty expression.
	Tok string
	// End indicates the expression ended early: Tok is the final operator
	// left missing an operand rather than a token out of place.
	End bool
}

func (err *ExprError) Error() string {
	switch {
	case err.Tok == "":
		return "empty expression"
	case err.End:
		return errpos(err.Col, "expression ends at operator "+strconv.Quote(err.Tok))
	}
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Tok))
}

func (err *ExprError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid expression text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of
	// the token that caused it.
	Pos() int
}

var (
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*ExprError)(nil)
)
