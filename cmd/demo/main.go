package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/flarebyte/demo/cmd/demo/root"
	"github.com/flarebyte/demo/internal/exitcode"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and returns the process exit code.
// Failures print a short, single-line error to stderr, never usage or stack
// traces; usage errors add a pointer to --help.
func run(args []string, stdout, stderr io.Writer) int {
	err := root.Execute(args, stdout, stderr)
	if err == nil {
		return exitcode.Success
	}

	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	prefix := color.New(color.FgRed, color.Bold)
	if isTerminal(stderr) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	_, _ = prefix.Fprint(stderr, "error:")
	_, _ = fmt.Fprintf(stderr, " %s\n", msg)

	code := exitcode.Of(err)
	if code == exitcode.Usage {
		_, _ = fmt.Fprintln(stderr, "Run 'demo --help' for usage.")
	}
	return code
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
