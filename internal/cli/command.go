package cli

import (
	"io"

	"github.com/ZacharyZcR/LAAPatch/internal/pe"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// Flags holds the command-line options.
type Flags struct {
	Set   bool
	Unset bool
	Debug bool
}

// LAACmd inspects or changes the Large Address Aware flag of one executable.
type LAACmd struct {
	Flags

	reporter *Reporter
	log      *logrus.Logger
	exitCode int
}

// NewLAACmd creates the command writing results to stdout and diagnostics to stderr.
func NewLAACmd(stdout, stderr io.Writer) *LAACmd {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &LAACmd{
		reporter: NewReporter(stdout, stderr),
		log:      log,
	}
}

// Command builds the cobra command.
func (cmd *LAACmd) Command() *cobra.Command {
	c := &cobra.Command{
		Use:           "laapatch [-s|--set] [-u|--unset] <filename>",
		Short:         "Get or set the Large Address Aware flag of a 32-bit Windows executable",
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			code, err := cmd.Run(args[0])
			cmd.exitCode = code
			return err
		},
	}

	flags := c.Flags()
	flags.BoolVarP(&cmd.Set, "set", "s", false, "set the LAA flag")
	flags.BoolVarP(&cmd.Unset, "unset", "u", false, "unset the LAA flag")
	flags.BoolVar(&cmd.Debug, "debug", false, "Prints debug output and the stack trace if an error occurs")
	return c
}

// Run executes the command against path and returns the process exit code.
func (cmd *LAACmd) Run(path string) (int, error) {
	if cmd.Debug {
		cmd.log.SetLevel(logrus.DebugLevel)
	}

	if cmd.Set && cmd.Unset {
		cmd.reporter.Conflict()
		return 1, nil
	}

	status, err := cmd.status(path)
	if err != nil {
		if pe.IsNotExecutable(err) {
			cmd.logKind(path)
		}
		return 1, err
	}

	switch {
	case cmd.Set:
		if status.LargeAddressAware {
			cmd.reporter.AlreadySet()
			return 1, nil
		}
		if err := cmd.toggle(path); err != nil {
			return 1, err
		}
		cmd.reporter.Enabled()
	case cmd.Unset:
		if !status.LargeAddressAware {
			cmd.reporter.AlreadyUnset()
			return 1, nil
		}
		if err := cmd.toggle(path); err != nil {
			return 1, err
		}
		cmd.reporter.Disabled()
	default:
		cmd.reporter.Status(status)
	}

	return 0, nil
}

func (cmd *LAACmd) status(path string) (pe.Status, error) {
	reader, err := pe.Open(path)
	if err != nil {
		return pe.Status{}, err
	}
	defer func() { _ = reader.Close() }()

	cmd.log.WithFields(logrus.Fields{"path": path, "size": reader.FileSize()}).Debug("opened read-only")

	status, err := reader.Status()
	if err != nil {
		return pe.Status{}, err
	}

	cmd.log.WithFields(logrus.Fields{
		"offset": status.Offset,
		"byte":   status.FlagByte,
	}).Debug("read flag byte")
	return status, nil
}

func (cmd *LAACmd) toggle(path string) (err error) {
	patcher, err := pe.NewPatcher(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := patcher.Close(); cerr != nil && err == nil {
			err = errors.WithStack(cerr)
		}
	}()

	cmd.log.WithField("path", path).Debug("opened read-write")

	written, err := patcher.Toggle()
	if err != nil {
		return err
	}

	cmd.log.WithField("byte", written).Debug("wrote flag byte")
	return nil
}

func (cmd *LAACmd) logKind(path string) {
	kind, err := pe.DetectKind(path)
	if err != nil {
		cmd.log.WithError(err).Debug("could not detect file type")
		return
	}
	cmd.log.WithField("kind", kind).Debug("detected file type")
}

// Execute runs the command line args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewLAACmd(stdout, stderr)
	root := cmd.Command()
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		cmd.reporter.Error(err, cmd.Debug)
		return 1
	}
	return cmd.exitCode
}
