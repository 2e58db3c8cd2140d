package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sxwebdev/xenv"
	"github.com/sxwebdev/xenv/internal/logging"
	"go.uber.org/zap"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	requires  []string
	files     []string
	section   string
	envPrefix string
	strict    bool
	verbose   bool

	logger *zap.Logger
}

func newRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "xenv",
		Short: "Check required environment variables",
		Long: `xenv resolves a set of required variables from the environment and from
layered config files (toml, yaml, json, dotenv) and reports every variable
that is missing.

Example:
  xenv check -r DATABASE_URL -r PORT=8080 -f config/base.toml -f config/local.toml
  xenv dump -r DATABASE_URL -f config/base.toml --format json`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringArrayVarP(&opts.requires, "require", "r", nil, "required variable as NAME or NAME=DEFAULT (repeatable)")
	flags.StringArrayVarP(&opts.files, "file", "f", nil, "config file, later files override earlier ones (repeatable)")
	flags.StringVarP(&opts.section, "section", "s", "env", "config file section holding the variables")
	flags.StringVar(&opts.envPrefix, "env-prefix", "", "prefix added to every environment variable name")
	flags.BoolVar(&opts.strict, "strict", false, "fail when a config file does not exist")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every file and resolution")

	rootCmd.AddCommand(
		newListCommand(opts),
		newDumpCommand(opts),
		newCheckCommand(opts),
		newMarkdownCommand(opts),
	)

	return rootCmd
}

// registry declares the --require flags in a fresh registry.
func (o *rootOptions) registry() (*xenv.Registry, error) {
	r := xenv.NewRegistry()

	for _, req := range o.requires {
		name, def, hasDefault := strings.Cut(req, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid --require %q: empty name", req)
		}

		if hasDefault {
			r.Register(xenv.Default(name, def))
		} else {
			r.Register(xenv.Required(name))
		}
	}

	return r, nil
}

func (o *rootOptions) options() []xenv.Option {
	opts := []xenv.Option{
		xenv.WithEnvPrefix(o.envPrefix),
	}

	if o.logger != nil {
		opts = append(opts, xenv.WithLogger(o.logger))
	}

	if o.strict {
		opts = append(opts, xenv.WithStrictFiles())
	}

	return opts
}
