// Command fractions evaluates fraction arithmetic expressions.
//
// With arguments, it joins them into one expression, echoes it, and prints
// the result:
//
//	$ fractions '1_3/5 + 1/2 * 3'
//	? 1_3/5 + 1/2 * 3
//	= 31/10
//
// With no arguments it prompts for expressions until an empty line or end
// of input. Evaluation errors print a diagnostic and the session keeps
// going.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/fractions"
)

const usage = `Evaluate fraction arithmetic expressions.

Usage:
  fractions [--] [EXPRESSION...]

Expressions are fraction literals like 11, -27/9, or 5_3/8, separated from
the operators + - * / by whitespace. Multiple EXPRESSION arguments join
into one expression. With no arguments, fractions reads expressions line
by line until an empty line or end of input.

Options:
  -h, --help  Show this message.
`

func main() {
	log.SetFlags(0)
	opts, err := docopt.ParseArgs(usage, exprArgv(os.Args[1:]), "")
	if err != nil {
		log.Fatal(err)
	}
	if args, _ := opts["EXPRESSION"].([]string); len(args) > 0 {
		expr := strings.Join(args, " ")
		fmt.Printf("? %s\n", expr)
		if !answer(expr) {
			os.Exit(1)
		}
		return
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		interact()
		return
	}
	batch(os.Stdin)
}

// exprArgv inserts "--" ahead of the arguments so that the whole command
// line reads as the expression. Without it, an expression starting with a
// negative literal like -39 would parse as an unknown option. The help
// flags stay in front so they keep working.
func exprArgv(argv []string) []string {
	if len(argv) == 0 {
		return argv
	}
	switch argv[0] {
	case "-h", "--help", "--":
		return argv
	}
	return append([]string{"--"}, argv...)
}

// answer evaluates one line and prints the result or a diagnostic,
// reporting whether evaluation succeeded.
func answer(line string) bool {
	r, err := fractions.Solve(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "! error evaluating expression: %v\n", err)
		return false
	}
	fmt.Printf("= %s\n", r)
	return true
}

// interact prompts for expressions until an empty line or EOF, keeping
// line history in $HOME/.fractions_history.
func interact() {
	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)
	loadHistory(cli)
	defer saveHistory(cli)
	for {
		line, err := cli.Prompt("? ")
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return
		case err != nil:
			log.Fatal(err)
		}
		if strings.TrimSpace(line) == "" {
			return
		}
		cli.AppendHistory(line)
		answer(line)
	}
}

// batch reads expressions line by line without prompting.
func batch(r io.Reader) {
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			return
		}
		answer(line)
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fractions_history")
}

func loadHistory(cli *liner.State) {
	p := historyPath()
	if p == "" {
		return
	}
	f, err := os.Open(p)
	if err != nil {
		return
	}
	defer f.Close()
	cli.ReadHistory(f)
}

func saveHistory(cli *liner.State) {
	p := historyPath()
	if p == "" {
		return
	}
	f, err := os.Create(p)
	if err != nil {
		return
	}
	defer f.Close()
	cli.WriteHistory(f)
}
