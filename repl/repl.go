package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/jilv220/ex-lisp/lisp"
	"github.com/jilv220/ex-lisp/parser"
)

// DefaultPrompt is the prompt used by the command line tools.
const DefaultPrompt = "exlisp> "

// RunRepl reads expressions from the terminal and evaluates them against
// a session environment until EOF.  An expression with unbalanced parens
// switches to a continuation prompt and keeps reading.  Evaluation errors
// are printed to stderr and leave the session environment as it was
// before the failed expression.
func RunRepl(prompt string) {
	env := lisp.NewEnv()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile(),
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			if err != io.EOF {
				errln(err)
			}
			return
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if strings.TrimSpace(string(line)) == "" {
			continue
		}
		expr, err := parser.Parse(string(line))
		if err != nil {
			if incomplete(err) {
				buf = append([]byte{}, line...)
				rl.SetPrompt(contPrompt)
				continue
			}
			errln(err)
			continue
		}
		v, next, err := lisp.Eval(expr, env)
		if err != nil {
			errln(err)
			continue
		}
		env = next
		fmt.Println(v)
	}
}

// incomplete reports whether err indicates unbalanced input that more
// lines could still complete.
func incomplete(err error) bool {
	var perr *parser.Error
	return errors.As(err, &perr) && perr.Errno == parser.ErrnoMissingCloseParen
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".exlisp_history")
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
