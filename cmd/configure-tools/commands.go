package main

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/dsalfran/ml-workspace/internal/render"
	"github.com/dsalfran/ml-workspace/internal/toolenv"
	"github.com/dsalfran/ml-workspace/pkg/logging"
)

type options struct {
	format      string
	logLevel    string
	versionFlag bool

	stdout   io.Writer
	stderr   io.Writer
	lookuper envconfig.Lookuper
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{
		stdout:   stdout,
		stderr:   stderr,
		lookuper: toolenv.OSLookuper(),
	}
	return opts.rootCmd()
}

func (o *options) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure-tools",
		Short: "Resolve workspace tool paths and authentication token",
		Long: `Resolve the resources path, workspace home, desktop path and the
Jupyter token query parameter from the environment, and print them
for the tool launch scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          o.runResolve,
	}
	cmd.SetOut(o.stdout)
	cmd.SetErr(o.stderr)

	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVarP(&o.format, "format", "f", string(render.FormatText), "Output format (text, env, json, yaml)")
	cmd.Flags().BoolVarP(&o.versionFlag, "version", "V", false, "Show version information")

	cmd.AddCommand(o.urlCmd())
	return cmd
}

func (o *options) urlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url <base>",
		Short: "Print a tool URL with the token parameter appended",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := toolenv.Resolve(cmd.Context(), o.lookuper, o.logger(true))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(o.stdout, cfg.ToolURL(args[0]))
			return errors.Wrap(err, "failed to write url")
		},
	}
}

func (o *options) runResolve(cmd *cobra.Command, _ []string) error {
	if o.versionFlag {
		fmt.Fprintf(o.stdout, "configure-tools %s\n", version)
		fmt.Fprintf(o.stdout, "Built: %s\n", buildTimestamp())
		return nil
	}

	format, err := render.ParseFormat(o.format)
	if err != nil {
		return err
	}

	cfg, err := toolenv.Resolve(cmd.Context(), o.lookuper, o.logger(format.MachineReadable()))
	if err != nil {
		return err
	}
	return render.Write(o.stdout, cfg, format)
}

// logger writes to stdout unless stdout carries parseable output.
func (o *options) logger(quietStdout bool) hclog.Logger {
	level := o.logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}
	out := o.stdout
	if quietStdout {
		out = o.stderr
	}
	return logging.NewLogger("configure-tools", level, out)
}
