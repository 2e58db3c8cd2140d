package main

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/sxwebdev/xenv"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the declared variable names, sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := opts.registry()
			if err != nil {
				return err
			}

			for _, name := range r.ListAllVars() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}

type dumpEntry struct {
	Value    string      `json:"value,omitempty"`
	Source   xenv.Source `json:"source"`
	Resolved bool        `json:"resolved"`
}

func newDumpCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every declared variable with its resolved value",
		Long: `Dump resolves every declared variable and prints where its value comes
from. Unresolved variables are listed, not reported as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := opts.registry()
			if err != nil {
				return err
			}

			switch format {
			case "table":
				usage, err := r.Usage(opts.files, opts.section, opts.options()...)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), usage)
				return nil
			case "json":
				values, err := r.DumpAllVars(opts.files, opts.section, opts.options()...)
				if err != nil {
					return err
				}

				out := make(map[string]dumpEntry, len(values))
				for name, res := range values {
					out[name] = dumpEntry{Value: res.Value, Source: res.Source, Resolved: res.Resolved()}
				}

				b, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}

			return fmt.Errorf("unknown format %q, expecting table or json", format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table or json")

	return cmd
}

func newCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Fail unless every declared variable resolves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := opts.registry()
			if err != nil {
				return err
			}

			err = r.Validate(opts.files, opts.section, opts.options()...)

			var missing *xenv.MissingVariablesError
			if errors.As(err, &missing) {
				for _, name := range missing.Names {
					fmt.Fprintf(cmd.ErrOrStderr(), "missing: %s\n", name)
				}
			}

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d variables resolved\n", len(r.ListAllVars()))
			return nil
		},
	}
}

func newMarkdownCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "markdown",
		Short: "Print the declared variables as a markdown table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := opts.registry()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), r.GenerateMarkdown())
			return nil
		},
	}
}
