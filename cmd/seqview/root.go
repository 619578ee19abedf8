package main

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"seqview/views"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	root := &cobra.Command{
		Use:          "seqview",
		Short:        "Print bounded views of line streams and key/value stores",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().String("config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().Bool("debug", false, "log at debug level in development format")

	root.AddCommand(
		newHeadCmd(a),
		newUntilCmd(a),
		newDropCmd(a),
		newKVCmd(a),
	)
	return root
}

// configure binds the flags of the command being run, then layers
// SEQVIEW_* environment variables and the optional config file under them.
func (a *app) configure(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}
	a.v.SetEnvPrefix("SEQVIEW")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}

	logger, err := configureLogging(a.v.GetBool("debug"))
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func configureLogging(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// viewFlags maps the --exact, --strict and --consume switches to views.Flags.
func (a *app) viewFlags() views.Flags {
	var f views.Flags
	if a.v.GetBool("exact") {
		f |= views.Exact
	}
	if a.v.GetBool("strict") {
		f |= views.OrThrow
	}
	if a.v.GetBool("consume") {
		f |= views.Consume
	}
	return f
}

// openInput returns the named file, or the command's stdin for no argument
// or "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return f, nil
}

// printView writes one line per element of v.
func printView[T any](w io.Writer, v views.Source[T], format func(T) string) error {
	for x, err := range views.Seq(v) {
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, format(x)+"\n"); err != nil {
			return errors.Wrap(err, "write")
		}
	}
	return nil
}

func line(s string) string { return s }
