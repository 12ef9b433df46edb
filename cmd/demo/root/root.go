package root

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/flarebyte/demo/cmd/demo/version"
	"github.com/flarebyte/demo/internal/buildinfo"
	"github.com/flarebyte/demo/internal/config"
	"github.com/flarebyte/demo/internal/exitcode"
	"github.com/flarebyte/demo/internal/greet"
	"github.com/spf13/cobra"
)

// rootOptions is rebuilt for every command tree; nothing survives a run.
type rootOptions struct {
	name        string
	configPath  string
	logLevel    string
	showVersion bool

	log *log.Logger
}

// NewRootCmd creates the root command for demo. Command output goes to stdout,
// logs to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "A simple demo application.",
		Long: "demo prints a greeting.\n\n" +
			"The name comes from --name, then from the config file given with --config,\n" +
			"and defaults to \"" + greet.DefaultName + "\".",
		Args: exitcode.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.log = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				return printVersion(cmd, opts)
			}
			greeting, err := resolveOptions(cmd, opts)
			if err != nil {
				return err
			}
			return greet.Run(cmd.OutOrStdout(), greeting)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(exitcode.FlagError)

	cmd.Flags().StringVarP(&opts.name, "name", "n", greet.DefaultName, "Your name.")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a config file (.cue, .yaml or .yml)")
	cmd.Flags().BoolVarP(&opts.showVersion, "version", "V", false, "Print version information and exit.")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", defaultLogLevel, "Log level on stderr: debug, info, warn, error")

	// Subcommands
	cmd.AddCommand(version.NewCmd())

	return cmd
}

// Execute runs the root command with the provided args.
func Execute(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd(stdout, stderr)
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

func printVersion(cmd *cobra.Command, opts *rootOptions) error {
	opts.log.Debug("reporting version", "source", buildinfo.Read().Source)
	_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.ImplementationVersion())
	return err
}

// resolveOptions applies name precedence: --name, then the config file, then
// the default.
func resolveOptions(cmd *cobra.Command, opts *rootOptions) (greet.Options, error) {
	out := greet.DefaultOptions()
	source := "default"

	if opts.configPath != "" {
		opts.log.Debug("loading config", "path", opts.configPath)
		f, err := config.Load(opts.configPath)
		if err != nil {
			return greet.Options{}, err
		}
		if f.HasName {
			out.Name = f.Name
			source = "config"
		}
	}
	if cmd.Flags().Changed("name") {
		out.Name = opts.name
		source = "flag"
	}

	opts.log.Debug("resolved options", "name", out.Name, "source", source)
	return out, nil
}
