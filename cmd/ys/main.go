// Package main provides the ys command-line front end for the validation
// engine: it reads a schema and an input document from disk, drives
// Evaluate, and reports the result.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	yamlschema "github.com/aisrael/yaml-schema"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})))

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logLevel() slog.Level {
	switch os.Getenv("YS_LOG") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newRootCmd() *cobra.Command {
	var schemaPath string
	var failFast bool

	root := &cobra.Command{
		Use:           "ys <file.yaml>",
		Short:         "Validate a YAML document against a YAML schema",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			ok, err := runValidate(schemaPath, args[0], failFast)
			if err != nil {
				return err
			}
			if !ok {
				os.Exit(1)
			}
			return nil
		},
	}
	root.Flags().StringVarP(&schemaPath, "schema", "f", "", "path to the YAML schema file (required)")
	root.Flags().BoolVar(&failFast, "fail-fast", false, "stop each validation branch at its first error")
	_ = root.MarkFlagRequired("schema")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the ys version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	})

	return root
}

// runValidate loads schemaPath, validates inputPath against it, prints the
// result, and reports whether validation succeeded.
func runValidate(schemaPath, inputPath string, failFast bool) (bool, error) {
	schemaText, err := os.ReadFile(schemaPath)
	if err != nil {
		return false, &yamlschema.LoaderError{Kind: yamlschema.ErrFileNotFound, Message: err.Error()}
	}
	inputText, err := os.ReadFile(inputPath)
	if err != nil {
		return false, &yamlschema.LoaderError{Kind: yamlschema.ErrFileNotFound, Message: err.Error()}
	}

	root, err := yamlschema.Load(string(schemaText))
	if err != nil {
		return false, err
	}
	slog.Debug("schema loaded", "path", schemaPath)

	ctx, err := yamlschema.Evaluate(root, string(inputText), failFast)
	if err != nil {
		return false, err
	}

	if !ctx.HasErrors() {
		fmt.Println("Validation successful")
		return true, nil
	}

	fmt.Println("Validation encountered errors:")
	for _, verr := range ctx.Errors() {
		fmt.Println(verr.String())
	}
	return false, nil
}
