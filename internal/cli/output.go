package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/storefront"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the backend refused the operation
	ExitCommandError = 2 // bad usage, no session, unreadable session file
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter renders command results as text tables or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// JSON reports whether results should be machine readable.
func (f *OutputFormatter) JSON() bool {
	return f.Format == "json"
}

func (f *OutputFormatter) encode(v interface{}) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table writes rows under header, or v as JSON.
func (f *OutputFormatter) Table(v interface{}, header string, rows []string) error {
	if f.JSON() {
		return f.encode(v)
	}
	tw := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, r := range rows {
		fmt.Fprintln(tw, r)
	}
	return tw.Flush()
}

// Line writes text, or v as JSON.
func (f *OutputFormatter) Line(v interface{}, text string) error {
	if f.JSON() {
		return f.encode(v)
	}
	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// notifier prints storefront notifications to w.
type notifier struct {
	w io.Writer
}

func (n notifier) Notify(level storefront.Level, msg string) {
	fmt.Fprintf(n.w, "[%s] %s\n", level, msg)
}
