package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/0xmaddie/catenate/machine"
	"github.com/0xmaddie/catenate/parser"
	"github.com/0xmaddie/catenate/printer"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run a program every time its file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0])
		},
	}
}

func runWatch(cmd *cobra.Command, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	ctx, cancel := newCancellableContext()
	defer cancel()

	runOnce := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("reading file", "path", path, "err", err)
			return
		}
		parsed, err := parser.Parse(string(data))
		if err != nil {
			slog.Error("parsing", "path", path, "err", err)
			return
		}
		result := machine.Normalize(parsed)
		fmt.Println(printer.Print(result))
	}

	slog.Info("watching", "path", path)
	runOnce()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("change detected", "event", event.String())
				runOnce()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watcher", "err", err)
		}
	}
}

// newCancellableContext cancels on SIGINT/SIGTERM so `watch` exits
// cleanly on Ctrl+C instead of leaving the fsnotify goroutine running.
func newCancellableContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx, cancel
}
