// Package cmdutil provides utilities for formatting CLI output.
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Stdout represents Stdout
var Stdout io.Writer = os.Stdout

// Stderr represents Stderr
var Stderr io.Writer = os.Stderr

// ColoredStderr represents a color supporting writer for Stderr
var ColoredStderr io.Writer = color.Error

// Stdin represents Stdin
var Stdin io.Reader = os.Stdin

// StdinIsTerminal reports whether Stdin is attached to a terminal. Tests
// can stub it out.
var StdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// ErrPrintf formats and prints the provided format string and args on stderr and
// colors the output red.
func ErrPrintf(msg string, a ...interface{}) {
	_, err := fmt.Fprintf(ColoredStderr, color.RedString(msg), a...)
	if err != nil {
		panic(err)
	}
}

// Println is a wrapper to fmt.Println that prints to cmdutil.Stdout
func Println(a ...interface{}) {
	_, err := fmt.Fprintln(Stdout, a...)
	if err != nil {
		panic(err)
	}
}

// Print is a wrapper to fmt.Print that prints to cmdutil.Stdout
func Print(a ...interface{}) {
	_, err := fmt.Fprint(Stdout, a...)
	if err != nil {
		panic(err)
	}
}
