// Package greet implements the single action of the demo CLI.
package greet

import (
	"fmt"
	"io"
)

// DefaultName is used when neither a flag nor a config file provides a name.
const DefaultName = "World"

// Options holds the parsed invocation options. Build one per invocation and
// do not mutate it afterwards.
type Options struct {
	Name string
}

// DefaultOptions returns Options with the default name.
func DefaultOptions() Options {
	return Options{Name: DefaultName}
}

// Message returns the greeting for name.
func Message(name string) string {
	return "Hello, " + name + "!"
}

// Run writes the greeting line for opts to w.
func Run(w io.Writer, opts Options) error {
	if _, err := fmt.Fprintln(w, Message(opts.Name)); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	return nil
}
