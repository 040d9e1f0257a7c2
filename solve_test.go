package fractions_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zephyrtronium/fractions"
)

func TestSolve(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"int", "11", "11"},
		{"mixed", "9_8/4", "11"},
		{"add", "9 + 2", "11"},
		{"sub", "31/2 - 9/2", "11"},
		{"neg-add", "-2_1/2 + 27/2", "11"},
		{"mul", "3/2 * 4/9", "2/3"},
		{"div", "3/5 / 7/10", "6/7"},
		{"div-zero", "11/3 / 0", "NaN"},
		{"precedence", "2 + 3 * 4", "14"},
		{"precedence-rev", "2 * 3 + 4", "10"},
		{"left-sub", "8 - 3 - 2", "3"},
		{"left-div", "12 / 3 / 2", "2"},
		{"signs", "1_3/5 + +987/144 * -377 / 21/5", "-441823/720"},
		{"rank-mix", "-39 - 19_12/49 / 35/42 + -41/40 * 53", "-228181/1960"},
		{"big", "178956969 * 36/3", "2147483628"},
		{"overflow-pos", "178956969 * 36/3 + 19_1/17", "+Infinity"},
		{"overflow-neg", "178956969 * -36/3 - 21_1/17", "-Infinity"},
		{"unicode", "1/2 × 4 ÷ 3", "2/3"},
		{"inf-flow", "5/0 + 1", "+Infinity"},
		{"inf-cancel", "5/0 - 1/0", "NaN"},
		{"inf-div", "5/0 / 1/0", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := fractions.Solve(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if got := r.String(); got != c.want {
				t.Errorf("wrong result from %q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestSolveExprError(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		tok  string
		end  bool
	}{
		{"empty", "", 0, "", false},
		{"blank", "   ", 0, "", false},
		{"leading-op", "+ 2/5 / 0_3/5 + 7/2", 1, "+", false},
		{"only-op", "*", 1, "*", false},
		{"adjacent-ops", "31/2 + - 9/2", 8, "-", false},
		{"adjacent-values", "1 2", 3, "2", false},
		{"dangling-op", "1 +", 3, "+", true},
		{"trailing-op", "2/5 / 0_3/5 + 7/2 *", 19, "*", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := fractions.Solve(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave no error", c.src)
			}
			if !r.IsNaN() {
				t.Errorf("evaluating %q gave non-NaN result %v", c.src, r)
			}
			u, ok := err.(*fractions.ExprError)
			if !ok {
				t.Fatalf("error was %#v, not ExprError", err)
			}
			if u.Col != c.col || u.Tok != c.tok || u.End != c.end {
				t.Errorf("wrong error for %q: want {%d %q %v}, got {%d %q %v}", c.src, c.col, c.tok, c.end, u.Col, u.Tok, u.End)
			}
			if u.Pos() != c.col {
				t.Errorf("position %d does not match column %d", u.Pos(), c.col)
			}
		})
	}
}

func TestSolveErrorMessages(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", "empty expression"},
		{"   ", "empty expression"},
		{"2/5 / 0_3/5 + 7/2 *", `19: expression ends at operator "*"`},
		{"31/2 + - 9/2", `8: unexpected token "-"`},
		{"+ 2/5", `1: unexpected token "+"`},
		{"51 % 13", `4: invalid fraction literal "%"`},
	}
	for _, c := range cases {
		_, err := fractions.Solve(c.src)
		if err == nil {
			t.Errorf("evaluating %q gave no error", c.src)
			continue
		}
		if got := err.Error(); got != c.want {
			t.Errorf("wrong message for %q: want %q, got %q", c.src, c.want, got)
		}
	}
}

func TestSolveLiteralError(t *testing.T) {
	r, err := fractions.Solve("51 % 13")
	if err == nil {
		t.Fatal("evaluating gave no error")
	}
	if !r.IsNaN() {
		t.Errorf("non-NaN result %v", r)
	}
	var lit *fractions.LiteralError
	if !errors.As(err, &lit) {
		t.Fatalf("error was %#v, not LiteralError", err)
	}
	if lit.Text != "%" || lit.Col != 4 {
		t.Errorf("wrong literal error: %q at %d", lit.Text, lit.Col)
	}
	var input fractions.InputError = lit
	if input.Pos() != 4 {
		t.Errorf("wrong position: %d", input.Pos())
	}
}

func TestEvalEmpty(t *testing.T) {
	r, err := fractions.Eval(nil)
	if err == nil {
		t.Fatal("no error from empty expression")
	}
	if !r.IsNaN() {
		t.Errorf("non-NaN result %v", r)
	}
	if got := err.Error(); got != "empty expression" {
		t.Errorf("wrong message: %q", got)
	}
}

func TestEvalTokens(t *testing.T) {
	toks, err := fractions.Tokenize("1/3 + 1/6")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	r, err := fractions.Eval(toks)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if r != fractions.FromRatio(1, 2) {
		t.Errorf("wrong result: want 1/2, got %v", r)
	}
}

func BenchmarkSolve(b *testing.B) {
	b.Run("small", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			fractions.Solve("9 + 2")
		}
	})
	b.Run("ranks", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			fractions.Solve("-39 - 19_12/49 / 35/42 + -41/40 * 53")
		}
	})
}

func Example() {
	exprs := []string{
		"1_3/5 + 1/2 * 3",
		"-39 - 19_12/49 / 35/42 + -41/40 * 53",
		"11/3 / 0",
	}
	for _, expr := range exprs {
		r, err := fractions.Solve(expr)
		if err != nil {
			fmt.Println("!", err)
			continue
		}
		fmt.Println("=", r)
	}
	// Output:
	// = 31/10
	// = -228181/1960
	// = NaN
}
