// Package cli provides command-line interface utilities.
package cli

import (
	"fmt"
	"io"

	"github.com/ZacharyZcR/LAAPatch/internal/pe"
	"github.com/fatih/color"
)

// Reporter prints the outcome of an inspection or patch.
type Reporter struct {
	out io.Writer
	err io.Writer
}

// NewReporter creates a reporter writing results to out and failures to errOut.
func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, err: errOut}
}

// Status prints whether the executable is Large Address Aware.
func (r *Reporter) Status(status pe.Status) {
	_, _ = fmt.Fprintln(r.out, StatusLine(status))
}

// StatusLine renders the one-line status sentence.
func StatusLine(status pe.Status) string {
	verb := "is not"
	if status.LargeAddressAware {
		verb = "is"
	}
	return fmt.Sprintf("This executable %s Large Address Aware (flag byte = 0x%02x)", verb, status.FlagByte)
}

// Enabled confirms the flag was set.
func (r *Reporter) Enabled() {
	green := color.New(color.FgGreen)
	_, _ = green.Fprintln(r.out, "Large Address Awareness is now enabled for this executable")
}

// Disabled confirms the flag was cleared.
func (r *Reporter) Disabled() {
	green := color.New(color.FgGreen)
	_, _ = green.Fprintln(r.out, "Large Address Awareness is now disabled for this executable")
}

// AlreadySet reports a --set that has nothing to do.
func (r *Reporter) AlreadySet() {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintln(r.out, "This executable is already Large Address Aware - exiting with no changes")
}

// AlreadyUnset reports an --unset that has nothing to do.
func (r *Reporter) AlreadyUnset() {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintln(r.out, "This executable is not Large Address Aware - exiting with no changes")
}

// Conflict reports that both --set and --unset were given.
func (r *Reporter) Conflict() {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintln(r.out, "You are attempting both to set and to unset the LAA flag for this executable - exiting with no changes")
}

// Error prints a failure. With stack set, the full pkg/errors trace is shown.
func (r *Reporter) Error(err error, stack bool) {
	red := color.New(color.FgRed, color.Bold)
	if stack {
		_, _ = red.Fprintf(r.err, "Error: %+v\n", err)
		return
	}
	_, _ = red.Fprintf(r.err, "Error: %v\n", err)
}
