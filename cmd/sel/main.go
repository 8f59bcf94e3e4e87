// Command sel is SEL's command-line driver: compile and run source files,
// dump a compiled tree's structure, or watch a file and re-run it on save.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/sel-lang/sel/core/config"
	"github.com/sel-lang/sel/core/value"
	"github.com/sel-lang/sel/runtime/compiler"
	"github.com/sel-lang/sel/runtime/context"
	"github.com/sel-lang/sel/runtime/executor"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "sel",
		Short:         "Compile and run SEL expression programs",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level tracing")

	root.AddCommand(newRunCmd(), newCompileCmd(), newWatchCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var bindingsPath string

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Compile and execute a SEL source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runFile(args[0], bindingsPath)
			if err != nil {
				return err
			}
			for _, v := range results {
				fmt.Println(describeValue(v))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&bindingsPath, "bindings", "", "path to a JSON host bindings document")
	return cmd
}

func newCompileCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a SEL source file without executing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("sel: %w", err)
			}
			tree, err := compiler.Compile(string(source))
			if err != nil {
				return fmt.Errorf("sel: compile failed: %w", err)
			}
			if dump {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"rootNode": tree.Root,
					"subRoots": tree.SubRoots,
					"nodes":    len(tree.Nodes),
					"symbols":  tree.Symbols.Names(),
					"nested":   len(tree.Nested),
				})
			}
			fmt.Printf("compiled %d nodes, %d root statement(s)\n", len(tree.Nodes), 1+len(tree.SubRoots))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "print the compiled tree's shape as JSON")
	return cmd
}

func newWatchCmd() *cobra.Command {
	var bindingsPath string

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run a SEL source file every time it changes on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchFile(args[0], bindingsPath)
		},
	}
	cmd.Flags().StringVar(&bindingsPath, "bindings", "", "path to a JSON host bindings document")
	return cmd
}

func runFile(path, bindingsPath string) ([]value.Value, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sel: %w", err)
	}

	tree, err := compiler.Compile(string(source))
	if err != nil {
		return nil, fmt.Errorf("sel: compile failed: %w", err)
	}

	ctx := context.New(tree.Symbols)
	if bindingsPath != "" {
		if err := applyBindings(ctx, bindingsPath); err != nil {
			return nil, err
		}
	}

	return executor.Execute(tree, ctx), nil
}

func applyBindings(ctx *context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("sel: reading bindings: %w", err)
	}
	doc, err := config.Parse(raw)
	if err != nil {
		return fmt.Errorf("sel: %w", err)
	}
	if err := doc.ApplyTo(ctx); err != nil {
		return fmt.Errorf("sel: %w", err)
	}
	return nil
}

func watchFile(path, bindingsPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("sel: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("sel: %w", err)
	}

	runOnce := func() {
		results, err := runFile(path, bindingsPath)
		if err != nil {
			slog.Error("sel: run failed", "error", err)
			return
		}
		for _, v := range results {
			fmt.Println(describeValue(v))
		}
	}

	runOnce()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				slog.Debug("sel: source changed, re-running", "file", event.Name)
				runOnce()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("sel: watch error", "error", watchErr)
		}
	}
}

func describeValue(v value.Value) string {
	switch v.Tag {
	case value.Integer:
		i, _ := v.AsI64()
		return fmt.Sprintf("%d", i)
	case value.Decimal:
		f, _ := v.AsF64()
		return fmt.Sprintf("%g", f)
	case value.Boolean:
		b, _ := v.AsBool()
		return fmt.Sprintf("%t", b)
	case value.String:
		s, _ := v.AsString()
		return s
	case value.Unit:
		return "()"
	default:
		return v.Tag.String()
	}
}
