package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ranajunaid001/second-braind-junaid/internal/app"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/digest"
)

const triggerCLI = "cli"

func newDigestCmd() *cobra.Command {
	var deliver bool

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Print the digest, or deliver it with --send",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if deliver {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				// Deliver over the configured chat rather than stdout.
				engine, err := app.NewEngine(ctx, cfg, newLogger(cmd, cfg))
				if err != nil {
					return err
				}
				defer engine.Close()

				d, err := engine.Digest.Send(ctx, triggerCLI)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "digest sent (empty: %t)\n", d.Empty())
				return nil
			}

			engine, err := openEngine(ctx, cmd)
			if err != nil {
				return err
			}
			defer engine.Close()

			d, err := engine.Digest.Build(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), digest.Render(d))
			return nil
		},
	}

	cmd.Flags().BoolVar(&deliver, "send", false, "Deliver through the configured notifier")
	return cmd
}
