package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/0xmaddie/catenate/machine"
	"github.com/0xmaddie/catenate/parser"
	"github.com/0xmaddie/catenate/printer"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Parse, normalize, and print a program (reads stdin if no file is given)",
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

			result := machine.Normalize(parsed)
			slog.Debug("normalized", "source_bytes", len(src))
			fmt.Println(printer.Print(result))
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a program and print its canonical form without normalizing",
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

			fmt.Println(printer.Print(parsed))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the catenate version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version)
			return nil
		},
	}
}
