package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/interest-calculator/internal/calculator"
	"github.com/iwvelando/interest-calculator/internal/notes"
	"github.com/iwvelando/interest-calculator/internal/session"
	"github.com/iwvelando/interest-calculator/pkg/output"
	"github.com/iwvelando/interest-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shellHelp = `Commands:
  calc <kind> <principal> <rate> <time> [frequency]
  currency <symbol>
  show
  export <path>
  notes [name]
  help
  quit`

var errQuit = errors.New("quit")

func shellCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run an interactive calculation session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := newShell(app, cmd.OutOrStdout())
			return sh.run(cmd.InOrStdin())
		},
	}
}

// shell holds one session and the currency selector between commands.
type shell struct {
	app      *application
	out      io.Writer
	sess     *session.Session
	currency string
}

func newShell(app *application, out io.Writer) *shell {
	return &shell{
		app:      app,
		out:      out,
		sess:     app.newSession(),
		currency: app.conf.Defaults.Currency,
	}
}

func (s *shell) run(in io.Reader) error {
	fmt.Fprintln(s.out, shellHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}
		err := s.execute(strings.Fields(scanner.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.app.logger.Debug("shell command failed",
				zap.String("op", "shell.run"),
				zap.Error(err),
			)
			fmt.Fprintf(s.out, "Error: %s\n", err)
		}
	}
	fmt.Fprintln(s.out)
	return scanner.Err()
}

func (s *shell) execute(fields []string) error {
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "calc":
		return s.calc(fields[1:])
	case "currency":
		return s.setCurrency(fields[1:])
	case "show":
		res, ok := s.sess.Result()
		if !ok {
			fmt.Fprintf(s.out, "Warning: %s\n", session.ErrNoResult)
			return nil
		}
		return output.Write(s.out, s.app.outputFormat, res)
	case "export":
		if len(fields) != 2 {
			return errors.New("usage: export <path>")
		}
		return exportSession(s.out, s.sess, fields[1])
	case "notes":
		return s.notes(strings.Join(fields[1:], " "))
	case "help":
		fmt.Fprintln(s.out, shellHelp)
		return nil
	case "quit", "exit":
		return errQuit
	}
	return fmt.Errorf("unknown command %q, type help for a list", fields[0])
}

func (s *shell) calc(args []string) error {
	if len(args) < 4 || len(args) > 5 {
		return errors.New("usage: calc <kind> <principal> <rate> <time> [frequency]")
	}

	form := calculator.Form{
		Kind:      args[0],
		Principal: args[1],
		Rate:      args[2],
		Time:      args[3],
		Currency:  s.currency,
	}
	if len(args) == 5 {
		form.Frequency = args[4]
	}

	res, err := s.sess.Calculate(s.app.conf.ApplyDefaults(form))
	if err != nil {
		return err
	}
	return output.Write(s.out, s.app.outputFormat, res)
}

func (s *shell) setCurrency(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: currency <symbol>")
	}
	if warning := validation.ValidateCurrency(args[0]); warning != "" {
		return errors.New(warning)
	}
	s.currency = args[0]
	fmt.Fprintf(s.out, "Currency set to %s\n", s.currency)
	return nil
}

func (s *shell) notes(name string) error {
	if name == "" {
		for _, entry := range notes.All() {
			output.NoteFormat(s.out, entry)
		}
		return nil
	}
	entry, ok := notes.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown note %q", name)
	}
	output.NoteFormat(s.out, entry)
	return nil
}
