package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grovetools/navcoord/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}

	detail := func(key string) interface{} {
		v, _ := errors.Detail(err, key)
		return v
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(out, "❌ Configuration file %v not found.\n", detail("path"))

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(out, "❌ Invalid configuration: %v\n", err)
		fmt.Fprintf(out, "Run 'navdemo config validate' to check the file.\n")

	case errors.ErrCodeSnapshotInvalid:
		fmt.Fprintf(out, "❌ Saved navigation state at %v is unreadable.\n", detail("path"))
		fmt.Fprintf(out, "Run 'navdemo state clear' to discard it.\n")

	case errors.ErrCodeUnknownRoute, errors.ErrCodeUnknownTab:
		h.lookup(out, err)

	case errors.ErrCodeNotATerminal:
		fmt.Fprintf(out, "❌ %v is not a terminal. The navigation demo needs an interactive terminal.\n", detail("stream"))

	default:
		fmt.Fprintf(out, "❌ Error: %v\n", err)
	}

	if h.Verbose {
		if navErr, ok := errors.As(err); ok {
			fmt.Fprintf(out, "\nError details:\n%s\n", navErr.ToJSON())
		}
	}
	return err
}

func (h *ErrorHandler) lookup(out io.Writer, err error) {
	l, ok := errors.LookupOf(err)
	if !ok {
		fmt.Fprintf(out, "❌ Error: %v\n", err)
		return
	}
	if l.Area != "" {
		fmt.Fprintf(out, "❌ Unknown route '%s' in area '%s'.", l.Name, l.Area)
	} else {
		fmt.Fprintf(out, "❌ Unknown tab '%s'.", l.Name)
	}
	if l.Suggestion != "" {
		fmt.Fprintf(out, " Did you mean '%s'?", l.Suggestion)
	}
	fmt.Fprintln(out)
	if len(l.Known) > 0 {
		fmt.Fprintf(out, "Known names: %s\n", strings.Join(l.Known, ", "))
	}
}
