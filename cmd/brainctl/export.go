package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranajunaid001/second-braind-junaid/internal/app"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

const inboxTarget = "inbox"

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <category|inbox>",
		Short: "Write a collection as CSV with its schema headers",
		Long: `Export writes every row of one collection, active or not, using the
exact column headers of the collection schema. Categories accept the same
aliases as chat commands (p, i, int, a, li).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			engine, err := openEngine(ctx, cmd)
			if err != nil {
				return err
			}
			defer engine.Close()

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return export(ctx, engine, args[0], w)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func export(ctx context.Context, engine *app.Engine, target string, w io.Writer) error {
	if strings.EqualFold(strings.TrimSpace(target), inboxTarget) {
		entries, err := engine.Inbox.List(ctx, 0)
		if err != nil {
			return fmt.Errorf("list inbox log: %w", err)
		}
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, e.Values())
		}
		return writeCSV(w, domain.InboxLogSchema, rows)
	}

	c, err := domain.ParseCategory(target)
	if err != nil {
		return err
	}
	schema, err := domain.SchemaFor(c)
	if err != nil {
		return err
	}
	records, err := engine.Records.List(ctx, c)
	if err != nil {
		return fmt.Errorf("list %s: %w", c, err)
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Values())
	}
	return writeCSV(w, schema, rows)
}

func writeCSV(w io.Writer, schema domain.Schema, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(schema.Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
