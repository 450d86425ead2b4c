// Command brainctl is the operator CLI: send a message through the command
// interpreter, print or deliver the digest, migrate the database and export
// collections as CSV.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ranajunaid001/second-braind-junaid/internal/app"
	"github.com/ranajunaid001/second-braind-junaid/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "brainctl",
		Short: "Operate the second brain from the command line",
		Long: `brainctl talks to the same store and model as the server.

Messages sent with "brainctl send" go through the command interpreter, so
"fix idea", "top admin" and "who Sarah" work exactly as they do in chat.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "YAML config file (default $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().Bool("verbose", false, "Log to stderr")

	root.AddCommand(
		newVersionCmd(),
		newSendCmd(),
		newDigestCmd(),
		newMigrateCmd(),
		newExportCmd(),
		newEnvCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "brainctl %s\n", app.BuildVersion())
		},
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables the config accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			usage, err := config.Usage()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), usage)
			return nil
		},
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFrom(path, true)
	}
	return config.Load()
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return app.NewLoggerTo(cmd.ErrOrStderr(), config.LogConfig{Level: cfg.Log.Level, Format: "text"})
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openEngine builds the engine without the Telegram poller. Digests go to the
// command's stdout unless opts say otherwise.
func openEngine(ctx context.Context, cmd *cobra.Command, opts ...app.Option) (*app.Engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	opts = append([]app.Option{app.WithoutTelegram(), app.WithNotifier(app.WriterNotifier{W: cmd.OutOrStdout()})}, opts...)
	return app.NewEngine(ctx, cfg, newLogger(cmd, cfg), opts...)
}
