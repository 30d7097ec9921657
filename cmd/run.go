package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jilv220/ex-lisp/lisp"
	"github.com/jilv220/ex-lisp/parser"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := lisp.NewEnv()
		for _, source := range sources {
			env, err = evalSource(env, source, runPrint)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

// evalSource evaluates every expression in source sequentially, threading
// the environment from one expression into the next.
func evalSource(env *lisp.Env, source string, print bool) (*lisp.Env, error) {
	exprs, err := parser.ParseAll(source)
	if err != nil {
		return env, err
	}
	for _, expr := range exprs {
		v, next, err := lisp.Eval(expr, env)
		if err != nil {
			return env, err
		}
		env = next
		if print {
			fmt.Println(v)
		}
	}
	return env, nil
}

func runReadSources(args []string) ([]string, error) {
	sources := make([]string, len(args))
	if runExpression {
		copy(sources, args)
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = string(b)
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
