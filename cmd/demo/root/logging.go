package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/flarebyte/demo/internal/exitcode"
)

const defaultLogLevel = "warn"

// newLogger returns the diagnostic logger. Records go to w, which is stderr in
// practice, so stdout only ever carries command output.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, &exitcode.UsageError{Err: fmt.Errorf("invalid --log-level %q: expected debug, info, warn or error", level)}
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "demo",
		Level:  lvl,
	}), nil
}
