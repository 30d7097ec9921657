package main

import "github.com/jilv220/ex-lisp/cmd"

func main() {
	cmd.Execute()
}
