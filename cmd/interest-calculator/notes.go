package main

import (
	"fmt"
	"strings"

	"github.com/iwvelando/interest-calculator/internal/notes"
	"github.com/iwvelando/interest-calculator/pkg/output"
	"github.com/spf13/cobra"
)

func notesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes [name]",
		Short: "List the reference notes or show one entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range notes.Names() {
					fmt.Fprintln(w, name)
				}
				return nil
			}

			entry, ok := notes.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown note %q, expected one of: %s", args[0], strings.Join(notes.Names(), ", "))
			}
			output.NoteFormat(w, entry)
			return nil
		},
	}
}
