package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jilv220/ex-lisp/lisp"
	"github.com/jilv220/ex-lisp/repl"
)

// rootCmd starts an interactive session on a terminal and otherwise
// evaluates expressions read from stdin.
var rootCmd = &cobra.Command{
	Use:     "exlisp",
	Short:   "An interpreter for a small parenthesized expression language",
	Version: lisp.Version,
	Run: func(cmd *cobra.Command, args []string) {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			repl.RunRepl(repl.DefaultPrompt)
			return
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if _, err := evalSource(lisp.NewEnv(), string(source), true); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
