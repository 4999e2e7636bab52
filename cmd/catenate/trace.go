package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/0xmaddie/catenate/machine"
	"github.com/0xmaddie/catenate/parser"
	"github.com/0xmaddie/catenate/printer"
)

func newTraceCmd() *cobra.Command {
	var limit int
	var history int
	var format string

	cmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "Normalize with step recording enabled and dump the trace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args)
			if err != nil {
				return fmt.Errorf("reading source: %w", err)
			}

			parsed, err := parser.Parse(src)
			if err != nil {
				return fmt.Errorf("parsing: %w", err)
			}

			m := machine.New(parsed)
			m.EnableTrace()
			result, status := m.Run(context.Background(), limit, history)
			slog.Info("trace complete", "status", status.String(), "steps", len(m.Trace()))

			switch format {
			case "yaml":
				out, err := printer.DumpTrace(m.Trace())
				if err != nil {
					return fmt.Errorf("rendering trace: %w", err)
				}
				fmt.Print(out)
			case "text":
				for i, snap := range m.Trace() {
					fmt.Printf("step %d: code=%v data=%v sink=%v\n", i, snap.Code, snap.Data, snap.Sink)
				}
			default:
				return fmt.Errorf("unknown format %q, want %q or %q", format, "text", "yaml")
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "result (%s): %s\n", status, printer.Print(result))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10_000, "Maximum number of steps to run (0 means unbounded)")
	cmd.Flags().IntVar(&history, "history", 256, "Size of the divergence-detection hash ring (0 disables it)")
	cmd.Flags().StringVar(&format, "format", "yaml", `Trace output format: "text" or "yaml"`)
	return cmd
}
